package model

import "time"

type Activity struct {
	UserID    string    `bson:"user_id" json:"-"`
	Action    string    `bson:"action" json:"action"`
	NoteID    string    `bson:"note_id,omitempty" json:"note_id,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
