package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	FullName  string    `bson:"full_name" json:"full_name" binding:"required"`
	Email     string    `bson:"email" json:"email" binding:"required,email"`
	Password  string    `bson:"password" json:"password,omitempty" binding:"required,password"`
	Bio       string    `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
