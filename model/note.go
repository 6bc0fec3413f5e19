package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a single user-owned document. Every repository operation
// filters on UserID, so a note is never visible outside its owner.
type Note struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"-"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	Tags       []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
	DueDate    *time.Time         `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Archived   bool               `bson:"archived" json:"archived"`
	Pinned     bool               `bson:"pinned" json:"pinned"`
	Locked     bool               `bson:"locked" json:"locked"`
	LockSecret string             `bson:"lock_secret,omitempty" json:"-"`
}
