package repository

import (
	"context"
	"os"
	"time"

	"feathernote/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionsRepo(client *mongo.Client) *SessionsRepo {
	return &SessionsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("sessions"),
	}
}

func (r *SessionsRepo) CreateSession(ctx context.Context, session *model.Session) error {
	_, err := r.MongoCollection.InsertOne(ctx, session)
	return err
}

// GetUserSessions lists unexpired sessions, newest login first.
func (r *SessionsRepo) GetUserSessions(ctx context.Context, userID string) ([]*model.Session, error) {
	filter := bson.M{
		"user_id":    userID,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	sessions := []*model.Session{}
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
