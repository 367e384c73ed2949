package codecs

import (
	"testing"

	"github.com/pion/webrtc/v4"
)

func TestPriorityRankedEncodings(t *testing.T) {
	if p := Priority("h265", webrtc.RTPCodecTypeVideo); p != 1 {
		t.Errorf("expected h265 priority 1, got %d", p)
	}

	if p := Priority("h264", webrtc.RTPCodecTypeVideo); p != 2 {
		t.Errorf("expected h264 priority 2, got %d", p)
	}

	if p := Priority("opus", webrtc.RTPCodecTypeAudio); p != 1 {
		t.Errorf("expected opus priority 1, got %d", p)
	}
}

func TestPriorityUnrankedEncodingSortsLast(t *testing.T) {
	p := Priority("mjpeg", webrtc.RTPCodecTypeVideo)
	if p != UnrankedPriority {
		t.Fatalf("expected sentinel %d for unranked encoding, got %d", UnrankedPriority, p)
	}

	for encoding := range videoCodecPriority {
		if ranked := Priority(encoding, webrtc.RTPCodecTypeVideo); ranked >= p {
			t.Errorf("ranked encoding %q priority %d not below sentinel %d", encoding, ranked, p)
		}
	}
}

func TestPriorityTablesAreSeparatePerKind(t *testing.T) {
	if IsRanked("opus", webrtc.RTPCodecTypeVideo) {
		t.Error("opus must not be ranked as video")
	}

	if IsRanked("h264", webrtc.RTPCodecTypeAudio) {
		t.Error("h264 must not be ranked as audio")
	}
}

func TestCapabilityMimeTypes(t *testing.T) {
	capability := Capability("h264", webrtc.RTPCodecTypeVideo)
	if capability.MimeType != webrtc.MimeTypeH264 {
		t.Errorf("expected %s, got %s", webrtc.MimeTypeH264, capability.MimeType)
	}

	capability = Capability("opus", webrtc.RTPCodecTypeAudio)
	if capability.MimeType != webrtc.MimeTypeOpus || capability.Channels != 2 {
		t.Errorf("unexpected opus capability %+v", capability)
	}
}
