package model

import (
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// Secrets is the bundle stored under one secret ID in the secret store.
// It carries the inbound slash command token and the outbound Twitch
// credentials. Values are scoped to a single invocation and never persisted.
type Secrets struct {
	SlackToken         string `json:"slack_token"`
	TwitchClientID     string `json:"twitch_client_id"`
	TwitchClientSecret string `json:"twitch_client_secret"`
	TwitchAppToken     string `json:"twitch_app_token"`
}

// ParseSecrets decodes a stored secrets bundle
func ParseSecrets(raw []byte) (*Secrets, error) {
	var secrets Secrets
	if err := json.Unmarshal(raw, &secrets); err != nil {
		return nil, goerr.Wrap(ErrSecretMalformed, err.Error())
	}
	return &secrets, nil
}

// Validate checks that every field of the bundle is present
func (s *Secrets) Validate() error {
	if s.SlackToken == "" {
		return goerr.Wrap(ErrSecretMalformed, "slack_token is empty")
	}
	if s.TwitchClientID == "" {
		return goerr.Wrap(ErrSecretMalformed, "twitch_client_id is empty")
	}
	if s.TwitchClientSecret == "" {
		return goerr.Wrap(ErrSecretMalformed, "twitch_client_secret is empty")
	}
	if s.TwitchAppToken == "" {
		return goerr.Wrap(ErrSecretMalformed, "twitch_app_token is empty")
	}
	return nil
}

// LogValue returns structured log value without exposing secret material
func (s Secrets) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_slack_token", s.SlackToken != ""),
		slog.Bool("has_twitch_client_id", s.TwitchClientID != ""),
		slog.Bool("has_twitch_client_secret", s.TwitchClientSecret != ""),
		slog.Bool("has_twitch_app_token", s.TwitchAppToken != ""),
	)
}
