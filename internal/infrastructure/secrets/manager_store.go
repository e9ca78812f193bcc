package secrets

import (
	"context"
	"encoding/json"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// ManagerStore resolves credentials from AWS Secrets Manager. Secrets are
// JSON documents holding client_id / client_secret.
type ManagerStore struct {
	client *secretsmanager.Client
}

var _ repository.CredentialStore = (*ManagerStore)(nil)

// NewManagerStore creates a Secrets Manager backed credential store
func NewManagerStore(client *secretsmanager.Client) *ManagerStore {
	return &ManagerStore{client: client}
}

// GetCredentials fetches and decodes the named secret
func (s *ManagerStore) GetCredentials(ctx context.Context, name string) (entity.APICredentials, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return entity.APICredentials{}, apperr.Wrap(apperr.Authentication,
			"secrets.GetCredentials", "failed to fetch upstream credentials", err)
	}

	var creds entity.APICredentials
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &creds); err != nil {
		return entity.APICredentials{}, apperr.Wrap(apperr.Authentication,
			"secrets.GetCredentials", "malformed upstream credential secret", err)
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return entity.APICredentials{}, apperr.New(apperr.Authentication,
			"secrets.GetCredentials", "upstream credential secret is incomplete")
	}
	return creds, nil
}
