package config

import (
	"log/slog"

	"github.com/secmon-lab/tuser/pkg/domain/interfaces"
	"github.com/secmon-lab/tuser/pkg/service/twitch"
	"github.com/urfave/cli/v3"
)

// Twitch holds Twitch API configuration
type Twitch struct {
	APIURL string
}

// Flags returns CLI flags for Twitch configuration
func (t *Twitch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "twitch-api-url",
			Usage:       "Twitch Helix users endpoint",
			Category:    "Twitch",
			Value:       twitch.DefaultAPIURL,
			Sources:     cli.EnvVars("TUSER_TWITCH_API_URL"),
			Destination: &t.APIURL,
		},
	}
}

// Configure creates and returns a Twitch user directory client
func (t *Twitch) Configure() interfaces.UserDirectory {
	if t.APIURL == "" {
		return twitch.New()
	}
	return twitch.New(twitch.WithAPIURL(t.APIURL))
}

// LogValue returns structured log value
func (t Twitch) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("apiURL", t.APIURL),
	)
}
