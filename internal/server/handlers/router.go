// Package handlers wires the WHEP signaling surface onto the router.
package handlers

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/metrics"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/manager"
)

// NewRouter builds the signaling router: WHEP offer/delete, status, metrics
// and an optional static frontend.
func NewRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(metrics.RequestMiddleware)

	router.Post("/api/whep", WhepOfferHandler)
	router.Delete("/api/whep/resource/{id}", WhepDeleteHandler)
	router.Get("/api/status", StatusHandler)

	if metrics.Relay != nil {
		router.Get("/metrics", metrics.Relay.Handler(func() {
			metrics.Relay.SetActiveSessions(manager.Sessions.Count())
		}).ServeHTTP)
	}

	if staticPath := environment.GetEnv(environment.StaticPath, "./static"); dirExists(staticPath) {
		router.Handle("/*", http.FileServer(http.Dir(staticPath)))
	}

	return router
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
