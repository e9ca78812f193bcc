package repository

import (
	"context"
	"errors"

	"lounge-advisor-service/internal/domain/apperr"
	"lounge-advisor-service/internal/domain/entity"
	"lounge-advisor-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserProfileRepository implements UserProfileRepository
type MongoUserProfileRepository struct {
	collection *mongo.Collection
}

var _ repository.UserProfileRepository = (*MongoUserProfileRepository)(nil)

// NewMongoUserProfileRepository creates a new user profile repository
func NewMongoUserProfileRepository(db *mongo.Database) *MongoUserProfileRepository {
	return &MongoUserProfileRepository{
		collection: db.Collection("user_profiles"),
	}
}

// Get finds a user's entitlement by user id
func (r *MongoUserProfileRepository) Get(ctx context.Context, userID string) (*entity.UserEntitlement, error) {
	const op = "users.Get"

	var ent entity.UserEntitlement
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, op, "user profile not found")
		}
		return nil, apperr.Wrap(apperr.Upstream, op, "user profile lookup failed", err)
	}
	return &ent, nil
}
