package repository

import (
	"context"

	"quizapp-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

// Upsert overwrites the profile document on every sign-in, keyed by the
// identity provider's uid.
func (r *UserRepository) Upsert(ctx context.Context, user *models.UserProfile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user, opts)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.UserProfile, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.UserProfile
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
