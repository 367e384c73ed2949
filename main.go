package main

import (
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/metrics"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/rtsp"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/server"
	"github.com/MariaGolubev/rtsp-to-webrtc/internal/webrtc"

	"net/http"
	_ "net/http/pprof"

	pionwebrtc "github.com/pion/webrtc/v4"
)

func main() {
	environment.LoadEnvironmentVariables()
	metrics.Setup()

	if environment.IsEnabled(environment.EnableProfiling) {
		go func() {
			runtime.SetBlockProfileRate(1)
			runtime.SetMutexProfileFraction(1)
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	log.Println("Booting up RTSP to WebRTC relay", time.Now().Format("2006-01-02 15:04:05"))

	sourceConfig := rtsp.Config{
		URL:       environment.GetEnv(environment.RTSPURL, ""),
		Username:  environment.GetEnv(environment.RTSPUsername, ""),
		Password:  environment.GetEnv(environment.RTSPPassword, ""),
		Transport: strings.ToLower(environment.GetEnv(environment.RTSPTransport, "")),
	}
	if sourceConfig.URL == "" {
		log.Fatal("RTSP_URL is required")
	}

	client, desc, err := rtsp.Connect(sourceConfig)
	if err != nil {
		log.Fatal("RTSP describe failed: ", err)
	}
	defer client.Close()

	video, audio, err := rtsp.SelectStreams(rtsp.DescribeStreams(desc))
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Selected video stream", video.Index, ":", video.Encoding, video.Width, "x", video.Height)
	if audio != nil {
		log.Println("Selected audio stream", audio.Index, ":", audio.Encoding)
	} else {
		log.Println("No supported audio stream, relaying video only")
	}

	if _, err := client.Setup(desc.BaseURL, video.Media, 0, 0); err != nil {
		log.Fatal("RTSP setup failed: ", err)
	}
	if audio != nil {
		if _, err := client.Setup(desc.BaseURL, audio.Media, 0, 0); err != nil {
			log.Fatal("RTSP setup failed: ", err)
		}
	}

	audioEncoding := ""
	if audio != nil {
		audioEncoding = audio.Encoding
	}
	if err := webrtc.Setup(video.Encoding, audioEncoding); err != nil {
		log.Fatal("WebRTC setup failed: ", err)
	}

	relay := rtsp.NewRelay(environment.GetEnvInt(environment.QueueLength, rtsp.DefaultQueueLength))
	relay.AddTrack(pionwebrtc.RTPCodecTypeVideo, webrtc.VideoTrack())
	if audio != nil {
		relay.AddTrack(pionwebrtc.RTPCodecTypeAudio, webrtc.AudioTrack())
	}
	relay.BindUpstream(client, video, audio)
	relay.Start()
	rtsp.ActiveRelay = relay

	if _, err := client.Play(nil); err != nil {
		log.Fatal("RTSP play failed: ", err)
	}

	go func() {
		// No reconnection: when the upstream session ends, log and keep
		// serving whatever viewers remain.
		log.Println("RTSP session ended:", client.Wait())
		relay.Stop()
	}()

	server.StartWebServer()
}
