package dto

import (
	"time"

	"feathernote/model"
)

type SaveSettingsRequest struct {
	Theme         string `json:"theme" binding:"omitempty,oneof=light dark system"`
	Notifications bool   `json:"notifications"`
	SortBy        string `json:"sort_by" binding:"omitempty,oneof=title createdAt updatedAt"`
	SortOrder     string `json:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type ActivityResponse struct {
	Action    string `json:"action"`
	NoteID    string `json:"note_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

func ToActivityResponses(entries []*model.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		responses[i] = ActivityResponse{
			Action:    e.Action,
			NoteID:    e.NoteID,
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
		}
	}
	return responses
}
