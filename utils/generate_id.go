package utils

import "github.com/google/uuid"

// GenerateID returns a new opaque identifier for users and sessions.
// Note ids come from MongoDB ObjectIDs instead.
func GenerateID() string {
	return uuid.NewString()
}
