package repository

import (
	"context"
	"os"

	"feathernote/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activityListLimit caps the history view; the log itself is
// append-only and unbounded.
const activityListLimit = 100

type ActivityRepo struct {
	MongoCollection *mongo.Collection
}

func GetActivityRepo(client *mongo.Client) *ActivityRepo {
	return &ActivityRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("activity_logs"),
	}
}

func (r *ActivityRepo) Record(ctx context.Context, entry *model.Activity) error {
	_, err := r.MongoCollection.InsertOne(ctx, entry)
	return err
}

// GetUserActivity lists the most recent entries, newest first.
func (r *ActivityRepo) GetUserActivity(ctx context.Context, userID string) ([]*model.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(activityListLimit)

	entries := []*model.Activity{}
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
