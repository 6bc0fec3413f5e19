package repository

import (
	"context"
	"errors"
	"os"

	"feathernote/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrEmailTaken   = errors.New("email already in use")
	ErrUserNotFound = errors.New("user not found")
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	return &UsersRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("users"),
	}
}

// CreateUser inserts a new account, rejecting duplicate emails.
func (r *UsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	_, err = r.MongoCollection.InsertOne(ctx, user)
	return err
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UsersRepo) FindByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sets the user-editable profile fields.
func (r *UsersRepo) UpdateProfile(ctx context.Context, userID, fullName, bio, avatarURL string) error {
	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"full_name":  fullName,
			"bio":        bio,
			"avatar_url": avatarURL,
		}})
	return err
}
