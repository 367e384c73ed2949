// Package webrtc owns the downstream side of the relay: the pion API, the
// shared output tracks every viewer attaches to, and WHEP offer handling.
package webrtc

import (
	"log"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v4"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/codecs"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc/sessions/manager"
)

var (
	apiWHEP *webrtc.API

	videoTrack *webrtc.TrackLocalStaticRTP
	audioTrack *webrtc.TrackLocalStaticRTP
)

// Setup initializes the session registry, the pion API and one shared output
// track per selected media kind. audioEncoding may be empty when the upstream
// has no usable audio stream.
func Setup(videoEncoding, audioEncoding string) error {
	manager.Setup()

	mediaEngine := &webrtc.MediaEngine{}
	codecs.RegisterCodecs(mediaEngine)

	interceptorRegistry := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(mediaEngine, interceptorRegistry); err != nil {
		return err
	}

	apiWHEP = webrtc.NewAPI(
		webrtc.WithMediaEngine(mediaEngine),
		webrtc.WithInterceptorRegistry(interceptorRegistry),
		webrtc.WithSettingEngine(getSettingEngine()),
	)

	track, err := webrtc.NewTrackLocalStaticRTP(
		codecs.Capability(videoEncoding, webrtc.RTPCodecTypeVideo),
		"video",
		"rtsp-relay",
	)
	if err != nil {
		return err
	}
	videoTrack = track
	audioTrack = nil

	if audioEncoding != "" {
		track, err := webrtc.NewTrackLocalStaticRTP(
			codecs.Capability(audioEncoding, webrtc.RTPCodecTypeAudio),
			"audio",
			"rtsp-relay",
		)
		if err != nil {
			return err
		}
		audioTrack = track
	}

	log.Println("WebRTC.Setup: video", videoEncoding, "audio", audioEncoding)

	return nil
}

// VideoTrack returns the shared video output track.
func VideoTrack() *webrtc.TrackLocalStaticRTP {
	return videoTrack
}

// AudioTrack returns the shared audio output track, or nil when the upstream
// has no selected audio stream.
func AudioTrack() *webrtc.TrackLocalStaticRTP {
	return audioTrack
}
