package utils

import (
	"log"
	"os"
	"strings"

	"github.com/MariaGolubev/rtsp-to-webrtc/internal/environment"
)

func DebugOutputOffer(offer string) string {
	if strings.EqualFold(os.Getenv(environment.DebugPrintOffer), "true") {
		log.Println(offer)
	}

	return offer
}

func DebugOutputAnswer(answer string) string {
	if strings.EqualFold(os.Getenv(environment.DebugPrintAnswer), "true") {
		log.Println(answer)
	}

	return answer
}
