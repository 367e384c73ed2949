package handlers

import (
	"io"
	"log"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pion/sdp/v3"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/server/helpers"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/manager"
)

const (
	sdpContentType  = "application/sdp"
	maxOfferBodyLen = 16 * 1024
)

// WhepOfferHandler accepts a viewer's SDP offer and responds with the SDP
// answer plus the session resource locator.
func WhepOfferHandler(responseWriter http.ResponseWriter, request *http.Request) {
	contentType, _, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	if err != nil || contentType != sdpContentType {
		helpers.LogHTTPError(
			responseWriter,
			"Content-Type must be "+sdpContentType,
			http.StatusUnsupportedMediaType)

		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(responseWriter, request.Body, maxOfferBodyLen))
	if err != nil || len(body) == 0 {
		helpers.LogHTTPError(
			responseWriter,
			"Could not read offer body",
			http.StatusBadRequest)

		return
	}

	var offer sdp.SessionDescription
	if err := offer.Unmarshal(body); err != nil {
		helpers.LogHTTPError(
			responseWriter,
			"Malformed SDP offer",
			http.StatusBadRequest)

		return
	}

	answer, sessionID, err := webrtc.WHEP(string(body))
	if err != nil {
		log.Println("WhepOfferHandler.Error:", err)
		helpers.LogHTTPError(
			responseWriter,
			"Could not create session",
			http.StatusInternalServerError)

		return
	}

	responseWriter.Header().Set("Content-Type", sdpContentType)
	responseWriter.Header().Set("Location", "/resource/"+sessionID)
	responseWriter.WriteHeader(http.StatusCreated)

	if _, err := responseWriter.Write([]byte(answer)); err != nil {
		log.Println("WhepOfferHandler.Write:", err)
	}
}

// WhepDeleteHandler tears down the session named by the id path segment.
// Deleting an unknown or already-removed id is a not-found outcome, never an
// error in the registry.
func WhepDeleteHandler(responseWriter http.ResponseWriter, request *http.Request) {
	sessionID := chi.URLParam(request, "id")

	session, ok := manager.Sessions.Remove(sessionID)
	if !ok {
		helpers.LogHTTPError(
			responseWriter,
			"No session found",
			http.StatusNotFound)

		return
	}

	session.Close()
	log.Println("WhepDeleteHandler.Deleted:", sessionID, "| Remaining:", manager.Sessions.Count())

	responseWriter.WriteHeader(http.StatusNoContent)
}
