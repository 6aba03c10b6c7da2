package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tuser/pkg/domain/interfaces"
	"github.com/secmon-lab/tuser/pkg/domain/model"
	"github.com/secmon-lab/tuser/pkg/domain/types"
	"github.com/secmon-lab/tuser/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Secrets holds secret provider configuration. The service reads one
// secrets bundle from AWS Secrets Manager; an inline bundle can replace it
// for local runs without AWS access.
type Secrets struct {
	SecretID  string
	AWSRegion string
	Inline    string
}

// Flags returns CLI flags for Secrets configuration
func (s *Secrets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "secret-id",
			Usage:       "Secrets Manager secret ID holding the tuser bundle",
			Category:    "Secrets",
			Value:       "prod/tuser",
			Sources:     cli.EnvVars("TUSER_SECRET_ID"),
			Destination: &s.SecretID,
		},
		&cli.StringFlag{
			Name:        "aws-region",
			Usage:       "AWS region of the secret",
			Category:    "Secrets",
			Value:       "us-west-2",
			Sources:     cli.EnvVars("TUSER_AWS_REGION"),
			Destination: &s.AWSRegion,
		},
		&cli.StringFlag{
			Name:        "secret-inline",
			Usage:       "Inline JSON secrets bundle, bypasses Secrets Manager (local use only)",
			Category:    "Secrets",
			Sources:     cli.EnvVars("TUSER_SECRET_INLINE"),
			Destination: &s.Inline,
		},
	}
}

// Configure creates and returns a secrets provider
func (s *Secrets) Configure(ctx context.Context) (interfaces.SecretsProvider, error) {
	if s.Inline != "" {
		ctxlog.From(ctx).Warn("Using inline secrets bundle instead of Secrets Manager")
		secrets, err := model.ParseSecrets([]byte(s.Inline))
		if err != nil {
			return nil, err
		}
		return repository.NewMemory(*secrets), nil
	}

	provider, err := repository.NewSecretsManager(ctx, s.AWSRegion, types.SecretID(s.SecretID))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init secrets manager provider",
			goerr.V("secretID", s.SecretID),
			goerr.V("region", s.AWSRegion),
		)
	}

	return provider, nil
}

// LogValue returns structured log value
func (s Secrets) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("secretID", s.SecretID),
		slog.String("region", s.AWSRegion),
		slog.Bool("has_inline", s.Inline != ""),
	)
}
