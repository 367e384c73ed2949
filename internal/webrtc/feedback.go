package webrtc

import (
	"log"

	"github.com/pion/rtcp"
	"github.com/pion/webrtc/v4"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
)

// drainSenderFeedback reads inbound RTCP from an outbound sender until the
// sender is closed. The sender stalls if nobody drains it. Feedback is
// classified and logged only; acting on it is out of scope.
func drainSenderFeedback(sessionID, kind string, sender *webrtc.RTPSender) {
	logRTCP := environment.IsEnabled(environment.DebugRTCP)

	for {
		packets, _, err := sender.ReadRTCP()
		if err != nil {
			// Expected once the session is torn down.
			return
		}

		if !logRTCP {
			continue
		}

		for _, packet := range packets {
			log.Println("WHEPSession.Feedback:", sessionID, kind, ClassifyFeedback(packet))
		}
	}
}

// ClassifyFeedback names the known downstream feedback packet kinds, with a
// catch-all for everything else.
func ClassifyFeedback(packet rtcp.Packet) string {
	switch packet.(type) {
	case *rtcp.SenderReport:
		return "SR"
	case *rtcp.ReceiverReport:
		return "RR"
	case *rtcp.PictureLossIndication:
		return "PLI"
	case *rtcp.FullIntraRequest:
		return "FIR"
	case *rtcp.TransportLayerCC:
		return "TWCC"
	case *rtcp.RapidResynchronizationRequest:
		return "RRR"
	case *rtcp.Goodbye:
		return "BYE"
	case *rtcp.SourceDescription:
		return "SDES"
	default:
		return "unknown"
	}
}
