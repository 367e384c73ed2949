package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pion/webrtc/v4"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/rtsp"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/server/helpers"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/manager"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/whep"
)

type trackStatus struct {
	Kind           string `json:"kind"`
	PacketsRelayed uint64 `json:"packetsRelayed"`
	PacketsDropped uint64 `json:"packetsDropped"`
}

type relayStatus struct {
	Tracks       []trackStatus          `json:"tracks"`
	SessionCount int                    `json:"sessionCount"`
	Sessions     []whep.SessionStateDTO `json:"sessions"`
}

// StatusHandler reports relay counters and the registered viewer sessions.
func StatusHandler(responseWriter http.ResponseWriter, request *http.Request) {
	status := relayStatus{
		SessionCount: manager.Sessions.Count(),
		Sessions:     manager.Sessions.GetSessionStates(),
	}

	if relay := rtsp.ActiveRelay; relay != nil {
		for _, kind := range []webrtc.RTPCodecType{webrtc.RTPCodecTypeVideo, webrtc.RTPCodecTypeAudio} {
			status.Tracks = append(status.Tracks, trackStatus{
				Kind:           kind.String(),
				PacketsRelayed: relay.PacketsRelayed(kind),
				PacketsDropped: relay.PacketsDropped(kind),
			})
		}
	}

	responseWriter.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(responseWriter).Encode(status); err != nil {
		helpers.LogHTTPError(
			responseWriter,
			"Internal Server Error",
			http.StatusInternalServerError)

		log.Println(err.Error())
	}
}
