package repository

import (
	"context"

	"lounge-advisor-service/internal/domain/entity"
)

// CredentialStore resolves named API credentials. The production chain is
// a TTL cache in front of AWS Secrets Manager.
type CredentialStore interface {
	GetCredentials(ctx context.Context, name string) (entity.APICredentials, error)
}
