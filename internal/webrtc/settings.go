package webrtc

import (
	"log"
	"os"
	"strings"

	"github.com/pion/dtls/v3/pkg/crypto/elliptic"
	"github.com/pion/ice/v4"
	"github.com/pion/webrtc/v4"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
)

func getSettingEngine() (settingEngine webrtc.SettingEngine) {
	setupNAT(&settingEngine)
	setupUDPMux(&settingEngine)

	settingEngine.SetDTLSEllipticCurves(elliptic.X25519, elliptic.P384, elliptic.P256)
	settingEngine.SetIncludeLoopbackCandidate(os.Getenv(environment.IncludeLoopbackCandidate) != "")

	return
}

func setupNAT(settingEngine *webrtc.SettingEngine) {
	if natIP := os.Getenv(environment.NAT1To1IP); natIP != "" {
		settingEngine.SetNAT1To1IPs(strings.Split(natIP, "|"), webrtc.ICECandidateTypeHost)
	}
}

func setupUDPMux(settingEngine *webrtc.SettingEngine) {
	udpMuxPort := environment.GetEnvInt(environment.UDPMuxPort, 0)
	if udpMuxPort == 0 {
		return
	}

	var muxOpts []ice.UDPMuxFromPortOption
	if filter := os.Getenv(environment.InterfaceFilter); filter != "" {
		muxOpts = append(muxOpts, ice.UDPMuxFromPortWithInterfaceFilter(func(i string) bool {
			return i == filter
		}))
	}

	udpMux, err := ice.NewMultiUDPMuxFromPort(udpMuxPort, muxOpts...)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("WebRTC.SettingEngine: UDP mux on port", udpMuxPort)
	settingEngine.SetICEUDPMux(udpMux)
}

func getPeerConnectionConfig() webrtc.Configuration {
	config := webrtc.Configuration{}
	if stunServers := os.Getenv(environment.STUNServers); stunServers != "" {
		for _, stunServer := range strings.Split(stunServers, "|") {
			config.ICEServers = append(config.ICEServers, webrtc.ICEServer{
				URLs: []string{"stun:" + stunServer},
			})
		}
	}

	return config
}
