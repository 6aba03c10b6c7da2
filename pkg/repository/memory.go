package repository

import (
	"context"

	"github.com/secmon-lab/tuser/pkg/domain/interfaces"
	"github.com/secmon-lab/tuser/pkg/domain/model"
)

// Memory implements SecretsProvider with a fixed in-process bundle. It backs
// local runs without AWS access and tests.
type Memory struct {
	secrets model.Secrets
}

// NewMemory creates a SecretsProvider returning a copy of the given bundle
func NewMemory(secrets model.Secrets) interfaces.SecretsProvider {
	return &Memory{secrets: secrets}
}

// GetSecrets returns the configured bundle
func (m *Memory) GetSecrets(ctx context.Context) (*model.Secrets, error) {
	if err := m.secrets.Validate(); err != nil {
		return nil, err
	}

	secrets := m.secrets
	return &secrets, nil
}
