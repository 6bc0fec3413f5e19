package dto

import (
	"time"

	"feathernote/model"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type ProfileResponse struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

func ToProfileResponse(user *model.User) ProfileResponse {
	return ProfileResponse{
		FullName:  user.FullName,
		Email:     user.Email,
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
	Device    string `json:"device"`
	IP        string `json:"ip"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

func ToSessionResponses(sessions []*model.Session) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		responses[i] = SessionResponse{
			SessionID: s.SessionID,
			Device:    s.Device,
			IP:        s.IP,
			CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
			ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
		}
	}
	return responses
}
