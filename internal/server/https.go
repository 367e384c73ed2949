package server

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
)

var defaultHTTPSAddress = ":443"

func startHTTPSServer(handler http.Handler) {
	sslKey := os.Getenv(environment.SSLKey)
	sslCert := os.Getenv(environment.SSLCert)

	server := &http.Server{
		Handler: handler,
		Addr:    getHTTPSAddress(),
	}

	cert, err := tls.LoadX509KeyPair(sslCert, sslKey)
	if err != nil {
		log.Fatal(err)
	}

	server.TLSConfig = &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{cert},
	}

	log.Println("Serving HTTPS server at", getHTTPSAddress())
	log.Fatal(server.ListenAndServeTLS("", ""))
}

func getHTTPSAddress() string {
	if httpsAddress := os.Getenv(environment.HTTPAddress); httpsAddress != "" {
		return httpsAddress
	}

	return defaultHTTPSAddress
}
