package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tuser/pkg/domain/interfaces"
	"github.com/secmon-lab/tuser/pkg/domain/model"
	"github.com/secmon-lab/tuser/pkg/domain/types"
)

// secretsManagerAPI is the subset of the AWS Secrets Manager client used by
// this provider
type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManager implements SecretsProvider backed by AWS Secrets Manager
type SecretsManager struct {
	client   secretsManagerAPI
	secretID types.SecretID
}

// NewSecretsManager creates a SecretsProvider reading the given secret ID
// from AWS Secrets Manager in the given region
func NewSecretsManager(ctx context.Context, region string, secretID types.SecretID) (interfaces.SecretsProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS configuration",
			goerr.V("region", region),
		)
	}

	return &SecretsManager{
		client:   secretsmanager.NewFromConfig(cfg),
		secretID: secretID,
	}, nil
}

// GetSecrets fetches and decodes the secrets bundle. The bundle is fetched
// fresh on every call.
func (s *SecretsManager) GetSecrets(ctx context.Context) (*model.Secrets, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID.String()),
	})
	if err != nil {
		return nil, goerr.Wrap(model.ErrSecretUnavailable, err.Error(),
			goerr.V("secretID", s.secretID),
		)
	}
	if out.SecretString == nil {
		return nil, goerr.Wrap(model.ErrSecretUnavailable, "secret has no string value",
			goerr.V("secretID", s.secretID),
		)
	}

	secrets, err := model.ParseSecrets([]byte(*out.SecretString))
	if err != nil {
		return nil, err
	}
	if err := secrets.Validate(); err != nil {
		return nil, err
	}

	return secrets, nil
}
