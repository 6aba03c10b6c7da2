package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/tuser/pkg/domain/interfaces"
	"github.com/secmon-lab/tuser/pkg/domain/model"
	"github.com/secmon-lab/tuser/pkg/domain/types"
	"github.com/slack-go/slack"
)

// UserLookup implements the slash command pipeline: fetch secrets,
// authenticate the command token, build the batched query, call the
// directory, format the response. The pipeline is strictly sequential and
// shares no state between invocations.
type UserLookup struct {
	secrets   interfaces.SecretsProvider
	directory interfaces.UserDirectory
}

// NewUserLookup creates a UserLookup use case
func NewUserLookup(secrets interfaces.SecretsProvider, directory interfaces.UserDirectory) *UserLookup {
	return &UserLookup{
		secrets:   secrets,
		directory: directory,
	}
}

// Authenticate compares the command token against the expected value.
// Comparison is exact and case sensitive. Failures are logged at error
// level; token values never appear in the log.
func Authenticate(ctx context.Context, provided, expected string) error {
	if provided == "" {
		ctxlog.From(ctx).Error("Slash command invoked with empty token")
		return model.ErrTokenMissing
	}
	if provided != expected {
		ctxlog.From(ctx).Error("Slash command invoked with incorrect token")
		return model.ErrTokenMismatch
	}
	return nil
}

// HandleCommand runs one lookup cycle. Secrets are fetched fresh on every
// call; a secrets failure aborts with an error and no chat message. Any
// other failure is converted into the generic failure message, so the
// caller always gets exactly one message unless configuration is broken.
func (uc *UserLookup) HandleCommand(ctx context.Context, cmd slack.SlashCommand) (*model.SlackMessage, error) {
	logger := ctxlog.From(ctx).With("lookupID", types.NewLookupID())
	ctx = ctxlog.With(ctx, logger)

	secrets, err := uc.secrets.GetSecrets(ctx)
	if err != nil {
		return nil, err
	}

	if err := Authenticate(ctx, cmd.Token, secrets.SlackToken); err != nil {
		return model.NewLookupFailedMessage(cmd.Text), nil
	}

	query, err := model.BuildLookupQuery(cmd.Text)
	if err != nil {
		logger.Error("Failed to build lookup query",
			"error", err,
			"text", cmd.Text,
		)
		return model.NewLookupFailedMessage(cmd.Text), nil
	}

	users, err := uc.directory.LookupUsers(ctx, query, secrets)
	if err != nil {
		logger.Error("Twitch user lookup failed",
			"error", err,
			"query", query,
		)
		return model.NewLookupFailedMessage(cmd.Text), nil
	}

	logger.Info("Resolved Twitch users",
		"requested", query.Size(),
		"resolved", len(users),
	)

	return model.NewUserListMessage(users), nil
}
