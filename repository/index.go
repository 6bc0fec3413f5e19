package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the indexes every collection relies on. Safe to
// run on every startup; Mongo treats existing indexes as a no-op.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().SetName("user_notes_updated"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "archived", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().SetName("user_archived_notes"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "tags", Value: 1},
			},
			Options: options.Index().SetName("user_tags"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "due_date", Value: 1},
			},
			Options: options.Index().SetName("user_due_dates"),
		},
	}

	if _, err := db.Collection("notes").Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create notes indexes: %w", err)
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("user_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id_index").SetUnique(true),
		},
	}

	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_sessions"),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("session_expiry").SetExpireAfterSeconds(0),
		},
	}

	if _, err := db.Collection("sessions").Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create sessions indexes: %w", err)
	}

	activityIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().SetName("user_activity"),
		},
	}

	if _, err := db.Collection("activity_logs").Indexes().CreateMany(ctx, activityIndexes); err != nil {
		return fmt.Errorf("failed to create activity indexes: %w", err)
	}

	settingsIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_settings").SetUnique(true),
		},
	}

	if _, err := db.Collection("settings").Indexes().CreateMany(ctx, settingsIndexes); err != nil {
		return fmt.Errorf("failed to create settings indexes: %w", err)
	}

	return nil
}
