package server

import (
	"log"
	"net/http"
	"os"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
)

var defaultHTTPAddress = ":8080"

func startHTTPServer(handler http.Handler) {
	server := &http.Server{
		Handler: handler,
		Addr:    getHTTPAddress(),
	}

	log.Println("Starting HTTP server at", getHTTPAddress())
	log.Fatal(server.ListenAndServe())
}

func getHTTPAddress() string {
	if httpAddress := os.Getenv(environment.HTTPAddress); httpAddress != "" {
		return httpAddress
	}

	return defaultHTTPAddress
}
