package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an application-level error with full detail. Error detail is
// only ever surfaced here; user-facing messages stay generic.
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("application error", "error", err)
}
