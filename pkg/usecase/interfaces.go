package usecase

import (
	"context"

	"github.com/secmon-lab/tuser/pkg/domain/model"
	"github.com/slack-go/slack"
)

// UserLookupUseCase defines the interface for slash command handling
type UserLookupUseCase interface {
	// HandleCommand runs one full lookup cycle for a slash command and
	// returns exactly one response message. An error is returned only for
	// configuration failures; lookup failures become the generic failure
	// message instead.
	HandleCommand(ctx context.Context, cmd slack.SlashCommand) (*model.SlackMessage, error)
}
