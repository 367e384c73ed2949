// Package whep holds the per-viewer session negotiated over the WHEP
// signaling endpoint.
package whep

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pion/webrtc/v4"
)

type Session struct {
	ID        string
	CreatedAt time.Time

	IsSessionClosed atomic.Bool
	sessionClose    sync.Once

	PeerConnection *webrtc.PeerConnection
}

// New creates a session wrapping an already-created peer connection.
func New(id string, peerConnection *webrtc.PeerConnection) *Session {
	return &Session{
		ID:             id,
		CreatedAt:      time.Now(),
		PeerConnection: peerConnection,
	}
}

// Close tears the session down. Safe to call from the DELETE handler and the
// connection-state callback racing each other; only the first call has any
// effect.
func (session *Session) Close() {
	session.sessionClose.Do(func() {
		log.Println("WHEPSession.Close:", session.ID)
		session.IsSessionClosed.Store(true)

		if session.PeerConnection == nil {
			return
		}

		if err := session.PeerConnection.Close(); err != nil {
			log.Println("WHEPSession.Close.PeerConnection.Error:", err)
		}
	})
}
