package dto

import (
	"encoding/json"
	"testing"
	"time"

	"feathernote/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTagListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want TagList
	}{
		{"array form", `{"title":"t","content":"c","tags":["a","b"]}`, TagList{"a", "b"}},
		{"comma string form", `{"title":"t","content":"c","tags":"a, b, b"}`, TagList{"a, b, b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SaveNoteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Tags)
		})
	}
}

func TestToNoteResponse(t *testing.T) {
	due := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	note := &model.Note{
		ID:         primitive.NewObjectID(),
		UserID:     "user-1",
		Title:      "T",
		Content:    "C",
		Tags:       []string{"zeta", "alpha"},
		CreatedAt:  time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC),
		DueDate:    &due,
		Locked:     true,
		LockSecret: "salt$hash",
	}

	resp := ToNoteResponse(note)

	assert.Equal(t, note.ID.Hex(), resp.ID)
	assert.Equal(t, []string{"alpha", "zeta"}, resp.Tags)
	assert.Equal(t, "2026-01-02T15:04:05Z", resp.CreatedAt)
	assert.Equal(t, "2026-01-03T10:00:00Z", resp.UpdatedAt)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, "2026-03-01T09:00:00Z", *resp.DueDate)
	assert.True(t, resp.Locked)
}

func TestNoteResponseNeverLeaksSecretOrOwner(t *testing.T) {
	note := &model.Note{
		ID:         primitive.NewObjectID(),
		UserID:     "user-1",
		Title:      "T",
		Content:    "C",
		LockSecret: "salt$hash",
	}

	data, err := json.Marshal(ToNoteResponse(note))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "salt$hash")
	assert.NotContains(t, string(data), "lock_secret")
	assert.NotContains(t, string(data), "user-1")
}

func TestNoteResponseOmitsAbsentDueDate(t *testing.T) {
	note := &model.Note{ID: primitive.NewObjectID(), Title: "T", Content: "C"}

	data, err := json.Marshal(ToNoteResponse(note))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "due_date")
}
