package codecs

import "github.com/pion/webrtc/v4"

// UnrankedPriority is returned for encodings that are not listed in the
// priority table. It is strictly greater than every configured rank, so
// unranked encodings always sort last.
const UnrankedPriority = 100

// Lower value = higher priority.
var (
	videoCodecPriority = map[string]int{
		"h265": 1,
		"h264": 2,
		"vp9":  3,
		"vp8":  4,
	}

	audioCodecPriority = map[string]int{
		"opus": 1,
		"pcmu": 2,
		"pcma": 3,
		"g722": 4,
	}
)

func priorityTable(kind webrtc.RTPCodecType) map[string]int {
	if kind == webrtc.RTPCodecTypeAudio {
		return audioCodecPriority
	}

	return videoCodecPriority
}

// Priority returns the configured rank of an encoding for the given media
// kind, or UnrankedPriority if the encoding is not listed.
func Priority(encoding string, kind webrtc.RTPCodecType) int {
	if priority, ok := priorityTable(kind)[encoding]; ok {
		return priority
	}

	return UnrankedPriority
}

// IsRanked reports whether an encoding appears in the priority table for the
// given media kind.
func IsRanked(encoding string, kind webrtc.RTPCodecType) bool {
	_, ok := priorityTable(kind)[encoding]
	return ok
}

// Capability returns the outbound RTP codec capability for a ranked encoding.
func Capability(encoding string, kind webrtc.RTPCodecType) webrtc.RTPCodecCapability {
	switch encoding {
	case "h265":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeH265, ClockRate: 90000}
	case "h264":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeH264, ClockRate: 90000}
	case "vp9":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP9, ClockRate: 90000}
	case "vp8":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeVP8, ClockRate: 90000}
	case "opus":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeOpus, ClockRate: 48000, Channels: 2}
	case "pcmu":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypePCMU, ClockRate: 8000}
	case "pcma":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypePCMA, ClockRate: 8000}
	case "g722":
		return webrtc.RTPCodecCapability{MimeType: webrtc.MimeTypeG722, ClockRate: 8000}
	}

	return webrtc.RTPCodecCapability{MimeType: kind.String() + "/" + encoding}
}
