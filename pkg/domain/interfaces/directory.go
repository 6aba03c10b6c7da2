package interfaces

import (
	"context"

	"github.com/secmon-lab/tuser/pkg/domain/model"
)

// UserDirectory resolves a batched lookup query against the Twitch Helix
// users endpoint. One query is always one upstream call, never one call per
// identifier, and there is no retry.
type UserDirectory interface {
	// LookupUsers resolves the query. Identifiers the directory does not
	// know are absent from the result rather than reported as errors.
	LookupUsers(ctx context.Context, query *model.LookupQuery, secrets *model.Secrets) ([]model.TwitchUser, error)
}
