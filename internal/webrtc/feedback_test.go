package webrtc

import (
	"testing"

	"github.com/pion/rtcp"
)

func TestClassifyFeedback(t *testing.T) {
	cases := []struct {
		packet rtcp.Packet
		want   string
	}{
		{&rtcp.SenderReport{}, "SR"},
		{&rtcp.ReceiverReport{}, "RR"},
		{&rtcp.PictureLossIndication{}, "PLI"},
		{&rtcp.FullIntraRequest{}, "FIR"},
		{&rtcp.TransportLayerCC{}, "TWCC"},
		{&rtcp.RapidResynchronizationRequest{}, "RRR"},
		{&rtcp.Goodbye{}, "BYE"},
		{&rtcp.SourceDescription{}, "SDES"},
		{&rtcp.SliceLossIndication{}, "unknown"},
	}

	for _, c := range cases {
		if got := ClassifyFeedback(c.packet); got != c.want {
			t.Errorf("ClassifyFeedback(%T) = %q, want %q", c.packet, got, c.want)
		}
	}
}
