package rtsp

import (
	"errors"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/bluenviron/gortsplib/v4"
	"github.com/bluenviron/gortsplib/v4/pkg/description"
	"github.com/pion/rtcp"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/metrics"
)

// DefaultQueueLength is the per-kind queue capacity between the upstream
// read callbacks and the track writers. Tunable via QUEUE_LENGTH.
const DefaultQueueLength = 100

// ActiveRelay is the process-wide relay, set by main once the upstream
// session is playing.
var ActiveRelay *Relay

// RTPWriter is the sink a relay track writes into; satisfied by the shared
// output tracks.
type RTPWriter interface {
	WriteRTP(packet *rtp.Packet) error
}

// Relay pumps RTP packets from the upstream session into the shared output
// tracks, one bounded FIFO queue and one writer goroutine per media kind.
// Enqueueing never blocks: a full queue drops the packet so that a slow
// writer can never stall the upstream read loop.
type Relay struct {
	queueLength int
	tracks      map[webrtc.RTPCodecType]*relayTrack
	writers     sync.WaitGroup
}

type relayTrack struct {
	kind  string
	queue chan *rtp.Packet
	sink  RTPWriter

	packetsRelayed atomic.Uint64
	packetsDropped atomic.Uint64
}

// NewRelay creates a relay with the given per-kind queue capacity.
func NewRelay(queueLength int) *Relay {
	if queueLength <= 0 {
		queueLength = DefaultQueueLength
	}

	return &Relay{
		queueLength: queueLength,
		tracks:      map[webrtc.RTPCodecType]*relayTrack{},
	}
}

// AddTrack registers the sink for a media kind. Must be called before Start.
func (relay *Relay) AddTrack(kind webrtc.RTPCodecType, sink RTPWriter) {
	relay.tracks[kind] = &relayTrack{
		kind:  kind.String(),
		queue: make(chan *rtp.Packet, relay.queueLength),
		sink:  sink,
	}
}

// Enqueue hands a packet to the writer for its kind without blocking. A full
// queue drops the packet; packets for kinds without a registered track are
// logged and discarded.
func (relay *Relay) Enqueue(kind webrtc.RTPCodecType, packet *rtp.Packet) {
	track, ok := relay.tracks[kind]
	if !ok {
		log.Println("Relay.Enqueue: discarding packet for unselected stream kind", kind)
		return
	}

	// The upstream reader reuses payload buffers after the callback returns.
	clone := &rtp.Packet{
		Header:  packet.Header,
		Payload: append([]byte(nil), packet.Payload...),
	}

	select {
	case track.queue <- clone:
	default:
		metrics.IncPacketsDropped(track.kind)
		if dropped := track.packetsDropped.Add(1); dropped == 1 || dropped%100 == 0 {
			log.Println("Relay.Enqueue:", track.kind, "queue full, dropped", dropped, "packets so far")
		}
	}
}

// Start launches one writer goroutine per registered track.
func (relay *Relay) Start() {
	for _, track := range relay.tracks {
		relay.writers.Add(1)
		go func(track *relayTrack) {
			defer relay.writers.Done()
			track.writeLoop()
		}(track)
	}
}

// Stop closes the queues and waits for the writers to drain.
func (relay *Relay) Stop() {
	for _, track := range relay.tracks {
		close(track.queue)
	}
	relay.writers.Wait()
}

// PacketsRelayed returns the number of packets written for a kind.
func (relay *Relay) PacketsRelayed(kind webrtc.RTPCodecType) uint64 {
	if track, ok := relay.tracks[kind]; ok {
		return track.packetsRelayed.Load()
	}
	return 0
}

// PacketsDropped returns the number of packets dropped for a kind.
func (relay *Relay) PacketsDropped(kind webrtc.RTPCodecType) uint64 {
	if track, ok := relay.tracks[kind]; ok {
		return track.packetsDropped.Load()
	}
	return 0
}

func (track *relayTrack) writeLoop() {
	for packet := range track.queue {
		if err := track.sink.WriteRTP(packet); err != nil {
			if errors.Is(err, io.ErrClosedPipe) {
				// Sink closed, expected during shutdown.
				return
			}

			log.Println("Relay.WriteLoop:", track.kind, "write error:", err)
			continue
		}

		track.packetsRelayed.Add(1)
		metrics.IncPacketsRelayed(track.kind)
	}
}

// BindUpstream registers the relay's packet callbacks on the RTSP client for
// the selected streams. Must be called between Setup and Play.
func (relay *Relay) BindUpstream(client *gortsplib.Client, video SelectedStream, audio *SelectedStream) {
	client.OnPacketRTP(video.Media, video.Format, func(packet *rtp.Packet) {
		relay.Enqueue(webrtc.RTPCodecTypeVideo, packet)
	})

	if audio != nil {
		client.OnPacketRTP(audio.Media, audio.Format, func(packet *rtp.Packet) {
			relay.Enqueue(webrtc.RTPCodecTypeAudio, packet)
		})
	}

	logRTCP := environment.IsEnabled(environment.DebugRTCP)
	client.OnPacketRTCPAny(func(media *description.Media, packet rtcp.Packet) {
		if logRTCP {
			log.Println("Relay.UpstreamRTCP:", media.Type, classifyUpstreamRTCP(packet))
		}
	})
}

// classifyUpstreamRTCP names the upstream control message kinds. Nothing acts
// on their content; the relay only observes them.
func classifyUpstreamRTCP(packet rtcp.Packet) string {
	switch packet.(type) {
	case *rtcp.SenderReport:
		return "SR"
	case *rtcp.ReceiverReport:
		return "RR"
	case *rtcp.SourceDescription:
		return "SDES"
	case *rtcp.Goodbye:
		return "BYE"
	default:
		return "unknown"
	}
}
