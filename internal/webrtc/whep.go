package webrtc

import (
	"log"

	"github.com/google/uuid"
	"github.com/pion/webrtc/v4"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/metrics"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/manager"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/whep"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/utils"
)

// WHEP takes a viewer's SDP offer, attaches the shared output tracks to a new
// peer connection, registers the session and returns the SDP answer together
// with the session id.
func WHEP(offer string) (answer string, sessionID string, err error) {
	utils.DebugOutputOffer(offer)

	peerConnection, err := apiWHEP.NewPeerConnection(getPeerConnectionConfig())
	if err != nil {
		return "", "", err
	}

	sessionID = uuid.New().String()

	videoSender, err := peerConnection.AddTrack(videoTrack)
	if err != nil {
		return closeOnError(peerConnection, err)
	}
	go drainSenderFeedback(sessionID, "video", videoSender)

	if audioTrack != nil {
		audioSender, err := peerConnection.AddTrack(audioTrack)
		if err != nil {
			return closeOnError(peerConnection, err)
		}
		go drainSenderFeedback(sessionID, "audio", audioSender)
	}

	session := whep.New(sessionID, peerConnection)
	session.RegisterHandlers(func() {
		if removed, ok := manager.Sessions.Remove(sessionID); ok {
			removed.Close()
			log.Println("WHEPSession.AutoRemoved:", sessionID, "| Remaining:", manager.Sessions.Count())
		}
	})

	if err := peerConnection.SetRemoteDescription(webrtc.SessionDescription{
		SDP:  offer,
		Type: webrtc.SDPTypeOffer,
	}); err != nil {
		return closeOnError(peerConnection, err)
	}

	gatherComplete := webrtc.GatheringCompletePromise(peerConnection)

	localAnswer, err := peerConnection.CreateAnswer(nil)
	if err != nil {
		return closeOnError(peerConnection, err)
	}

	if err := peerConnection.SetLocalDescription(localAnswer); err != nil {
		return closeOnError(peerConnection, err)
	}

	<-gatherComplete

	manager.Sessions.Add(session)
	metrics.IncSessionsCreated()
	log.Println("WHEPSession.Created:", sessionID, "| Sessions:", manager.Sessions.Count())

	return utils.DebugOutputAnswer(peerConnection.LocalDescription().SDP), sessionID, nil
}

func closeOnError(peerConnection *webrtc.PeerConnection, err error) (string, string, error) {
	if closeErr := peerConnection.Close(); closeErr != nil {
		log.Println("WHEP.CloseOnError:", closeErr)
	}

	return "", "", err
}
