package repository

import (
	"github.com/secmon-lab/tuser/pkg/domain/interfaces"
	"github.com/secmon-lab/tuser/pkg/domain/types"
)

// SecretsManagerAPI re-exports the client subset for tests
type SecretsManagerAPI = secretsManagerAPI

// NewSecretsManagerWithClient builds a provider around an injected client
func NewSecretsManagerWithClient(client secretsManagerAPI, secretID types.SecretID) interfaces.SecretsProvider {
	return &SecretsManager{
		client:   client,
		secretID: secretID,
	}
}
