package model

import "time"

// Session records one successful login. It is an audit trail for the
// user, not a server-side auth state: access is decided by the JWT.
type Session struct {
	SessionID string    `bson:"session_id" json:"session_id"`
	UserID    string    `bson:"user_id" json:"-"`
	Device    string    `bson:"device" json:"device"`
	IP        string    `bson:"ip" json:"ip"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
}
