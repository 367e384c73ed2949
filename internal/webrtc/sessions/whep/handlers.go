package whep

import (
	"log"

	"github.com/pion/webrtc/v4"
)

// RegisterHandlers installs the connection-state callback. onTerminal fires
// once the peer connection reaches a terminal state; the callback itself is
// responsible for removing the session from the registry.
func (session *Session) RegisterHandlers(onTerminal func()) {
	session.PeerConnection.OnConnectionStateChange(onConnectionStateChangeHandler(session, onTerminal))
}

func onConnectionStateChangeHandler(session *Session, onTerminal func()) func(webrtc.PeerConnectionState) {
	return func(state webrtc.PeerConnectionState) {
		log.Println("WHEPSession.OnConnectionStateChange:", session.ID, state)

		switch state {
		case
			webrtc.PeerConnectionStateDisconnected,
			webrtc.PeerConnectionStateFailed,
			webrtc.PeerConnectionStateClosed:
			onTerminal()
		}
	}
}
