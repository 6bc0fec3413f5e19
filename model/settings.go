package model

import "time"

// Settings is the per-user preferences document, loaded once on login
// and saved explicitly. Defaults apply when no document exists yet.
type Settings struct {
	UserID        string    `bson:"user_id" json:"-"`
	Theme         string    `bson:"theme" json:"theme"`
	Notifications bool      `bson:"notifications" json:"notifications"`
	SortBy        string    `bson:"sort_by" json:"sort_by"`
	SortOrder     string    `bson:"sort_order" json:"sort_order"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
