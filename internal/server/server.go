package server

import (
	"os"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/server/handlers"
)

// HTTP Setup
func StartWebServer() {
	router := handlers.NewRouter()

	if os.Getenv(environment.SSLKey) != "" && os.Getenv(environment.SSLCert) != "" {
		startHTTPSServer(router)
	} else {
		startHTTPServer(router)
	}
}
