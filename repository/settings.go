package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"feathernote/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrSettingsNotFound = errors.New("settings not found")

type SettingsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSettingsRepo(client *mongo.Client) *SettingsRepo {
	return &SettingsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("settings"),
	}
}

// GetSettings loads the per-user settings document.
func (r *SettingsRepo) GetSettings(ctx context.Context, userID string) (*model.Settings, error) {
	var settings model.Settings
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// SaveSettings upserts the whole settings document for the user.
func (r *SettingsRepo) SaveSettings(ctx context.Context, settings *model.Settings) error {
	settings.UpdatedAt = time.Now().UTC()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": settings.UserID},
		bson.M{"$set": settings},
		options.Update().SetUpsert(true))
	return err
}
