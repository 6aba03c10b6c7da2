package interfaces

import (
	"context"

	"github.com/secmon-lab/tuser/pkg/domain/model"
)

// SecretsProvider fetches the secrets bundle for the service. The bundle is
// fetched fresh on every invocation; providers do not cache.
type SecretsProvider interface {
	// GetSecrets retrieves and decodes the secrets bundle
	GetSecrets(ctx context.Context) (*model.Secrets, error)
}
