package rtsp

import (
	"io"
	"sync"
	"testing"

	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"
)

type recordingSink struct {
	mu        sync.Mutex
	sequences []uint16

	// failFirst makes the first write fail with failErr.
	failFirst bool
	failErr   error
}

func (sink *recordingSink) WriteRTP(packet *rtp.Packet) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.failFirst {
		sink.failFirst = false
		return sink.failErr
	}

	sink.sequences = append(sink.sequences, packet.SequenceNumber)
	return nil
}

func (sink *recordingSink) recorded() []uint16 {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	return append([]uint16(nil), sink.sequences...)
}

type closedSink struct{}

func (closedSink) WriteRTP(*rtp.Packet) error { return io.ErrClosedPipe }

func packetWithSequence(sequence uint16) *rtp.Packet {
	return &rtp.Packet{
		Header:  rtp.Header{SequenceNumber: sequence},
		Payload: []byte{0x00},
	}
}

func TestRelayDropsWhenQueueFull(t *testing.T) {
	relay := NewRelay(4)
	relay.AddTrack(webrtc.RTPCodecTypeVideo, &recordingSink{})

	// Writer not started: the queue fills and the surplus must be dropped
	// without Enqueue ever blocking.
	for sequence := uint16(0); sequence < 10; sequence++ {
		relay.Enqueue(webrtc.RTPCodecTypeVideo, packetWithSequence(sequence))
	}

	if dropped := relay.PacketsDropped(webrtc.RTPCodecTypeVideo); dropped != 6 {
		t.Fatalf("expected 6 dropped packets, got %d", dropped)
	}
}

func TestRelayPreservesReceiveOrder(t *testing.T) {
	sink := &recordingSink{}
	relay := NewRelay(16)
	relay.AddTrack(webrtc.RTPCodecTypeVideo, sink)

	for sequence := uint16(0); sequence < 10; sequence++ {
		relay.Enqueue(webrtc.RTPCodecTypeVideo, packetWithSequence(sequence))
	}

	relay.Start()
	relay.Stop()

	sequences := sink.recorded()
	if len(sequences) != 10 {
		t.Fatalf("expected 10 written packets, got %d", len(sequences))
	}

	for i, sequence := range sequences {
		if sequence != uint16(i) {
			t.Fatalf("packet order not preserved: position %d holds sequence %d", i, sequence)
		}
	}

	if relayed := relay.PacketsRelayed(webrtc.RTPCodecTypeVideo); relayed != 10 {
		t.Fatalf("expected 10 relayed packets, got %d", relayed)
	}
}

func TestRelayWriterExitsOnClosedSink(t *testing.T) {
	relay := NewRelay(8)
	relay.AddTrack(webrtc.RTPCodecTypeVideo, closedSink{})

	for sequence := uint16(0); sequence < 3; sequence++ {
		relay.Enqueue(webrtc.RTPCodecTypeVideo, packetWithSequence(sequence))
	}

	relay.Start()
	relay.Stop()

	if relayed := relay.PacketsRelayed(webrtc.RTPCodecTypeVideo); relayed != 0 {
		t.Fatalf("expected writer to exit on closed sink, got %d relayed packets", relayed)
	}
}

func TestRelayContinuesAfterWriteError(t *testing.T) {
	sink := &recordingSink{failFirst: true, failErr: io.ErrUnexpectedEOF}
	relay := NewRelay(8)
	relay.AddTrack(webrtc.RTPCodecTypeVideo, sink)

	for sequence := uint16(0); sequence < 3; sequence++ {
		relay.Enqueue(webrtc.RTPCodecTypeVideo, packetWithSequence(sequence))
	}

	relay.Start()
	relay.Stop()

	sequences := sink.recorded()
	if len(sequences) != 2 {
		t.Fatalf("expected the writer to continue past a write error, got %d written packets", len(sequences))
	}

	if relayed := relay.PacketsRelayed(webrtc.RTPCodecTypeVideo); relayed != 2 {
		t.Fatalf("expected 2 relayed packets, got %d", relayed)
	}
}

func TestRelayDiscardsUnselectedKind(t *testing.T) {
	relay := NewRelay(4)
	relay.AddTrack(webrtc.RTPCodecTypeVideo, &recordingSink{})

	// No audio track registered: the packet is logged and discarded.
	relay.Enqueue(webrtc.RTPCodecTypeAudio, packetWithSequence(0))

	if dropped := relay.PacketsDropped(webrtc.RTPCodecTypeAudio); dropped != 0 {
		t.Fatalf("unexpected drop accounting for unselected kind: %d", dropped)
	}
}

func TestRelayEnqueueCopiesPayload(t *testing.T) {
	sink := &recordingSink{}
	relay := NewRelay(4)
	relay.AddTrack(webrtc.RTPCodecTypeVideo, sink)

	packet := packetWithSequence(1)
	relay.Enqueue(webrtc.RTPCodecTypeVideo, packet)

	// Simulate the upstream reader reusing its buffer.
	packet.Payload[0] = 0xff
	packet.Header.SequenceNumber = 99

	relay.Start()
	relay.Stop()

	sequences := sink.recorded()
	if len(sequences) != 1 || sequences[0] != 1 {
		t.Fatalf("expected the enqueued packet to be isolated from buffer reuse, got %v", sequences)
	}
}
