package dto

import (
	"encoding/json"
	"sort"
	"time"

	"feathernote/model"
)

// TagList accepts tags either as a JSON array or as a single
// comma-separated string, the two shapes the editor sends.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = []string{s}
	return nil
}

type SaveNoteRequest struct {
	Title   string     `json:"title" binding:"required"`
	Content string     `json:"content" binding:"required"`
	Tags    TagList    `json:"tags"`
	DueDate *time.Time `json:"due_date"`
}

type LockNoteRequest struct {
	Secret string `json:"secret" binding:"required"`
}

type UnlockNoteRequest struct {
	Attempt string `json:"attempt" binding:"required"`
}

type UnlockNoteResponse struct {
	Match bool `json:"match"`
}

// NoteResponse is the boundary shape of a note: opaque hex id,
// ISO-8601 dates, tags rendered sorted. The lock secret has no field
// here and can never leak.
type NoteResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	DueDate   *string  `json:"due_date,omitempty"`
	Archived  bool     `json:"archived"`
	Pinned    bool     `json:"pinned"`
	Locked    bool     `json:"locked"`
}

func ToNoteResponse(note *model.Note) NoteResponse {
	tags := make([]string, len(note.Tags))
	copy(tags, note.Tags)
	sort.Strings(tags)

	response := NoteResponse{
		ID:        note.ID.Hex(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: note.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.UTC().Format(time.RFC3339),
		Archived:  note.Archived,
		Pinned:    note.Pinned,
		Locked:    note.Locked,
	}

	if note.DueDate != nil {
		due := note.DueDate.UTC().Format(time.RFC3339)
		response.DueDate = &due
	}

	return response
}

func ToNoteResponses(notes []*model.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = ToNoteResponse(note)
	}
	return responses
}
