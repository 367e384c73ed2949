// Package rtsp owns the upstream side of the relay: the RTSP client session,
// stream selection and the ingest pump feeding the shared output tracks.
package rtsp

import (
	"fmt"
	"log"
	"net/url"

	"github.com/bluenviron/gortsplib/v4"
	"github.com/bluenviron/gortsplib/v4/pkg/base"
	"github.com/bluenviron/gortsplib/v4/pkg/description"
)

// Config is the upstream source configuration.
type Config struct {
	URL      string
	Username string
	Password string

	// "tcp", "udp" or empty for automatic negotiation.
	Transport string
}

// Connect opens the RTSP session and fetches the upstream description.
// The caller owns the returned client and must Close it.
func Connect(config Config) (*gortsplib.Client, *description.Session, error) {
	u, err := base.ParseURL(config.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid RTSP URL: %w", err)
	}

	if config.Username != "" {
		u.User = url.UserPassword(config.Username, config.Password)
	}

	transport, err := parseTransport(config.Transport)
	if err != nil {
		return nil, nil, err
	}

	client := &gortsplib.Client{
		Transport: transport,
	}

	if err := client.Start(u.Scheme, u.Host); err != nil {
		return nil, nil, err
	}

	desc, _, err := client.Describe(u)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	log.Println("RTSP.Connect: described", len(desc.Medias), "medias at", u.Host)

	return client, desc, nil
}

func parseTransport(name string) (*gortsplib.Transport, error) {
	switch name {
	case "":
		return nil, nil
	case "tcp":
		transport := gortsplib.TransportTCP
		return &transport, nil
	case "udp":
		transport := gortsplib.TransportUDP
		return &transport, nil
	default:
		return nil, fmt.Errorf("unknown RTSP transport %q", name)
	}
}
