package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNoteQueryFilter(t *testing.T) {
	tests := []struct {
		name  string
		query NoteQuery
		check func(t *testing.T, filter bson.M)
	}{
		{
			name:  "base filter scopes owner and excludes archived",
			query: NoteQuery{},
			check: func(t *testing.T, filter bson.M) {
				assert.Equal(t, "user-1", filter["user_id"])
				assert.Equal(t, bson.M{"$ne": true}, filter["archived"])
				assert.NotContains(t, filter, "tags")
				assert.NotContains(t, filter, "$or")
			},
		},
		{
			name:  "tag filter is exact membership",
			query: NoteQuery{Tag: "work"},
			check: func(t *testing.T, filter bson.M) {
				assert.Equal(t, "work", filter["tags"])
			},
		},
		{
			name:  "search spans title content and tags case-insensitively",
			query: NoteQuery{Search: "foo"},
			check: func(t *testing.T, filter bson.M) {
				or, ok := filter["$or"].([]bson.M)
				require.True(t, ok)
				require.Len(t, or, 3)
				for _, clause := range or {
					for _, v := range clause {
						regex, ok := v.(primitive.Regex)
						require.True(t, ok)
						assert.Equal(t, "foo", regex.Pattern)
						assert.Equal(t, "i", regex.Options)
					}
				}
			},
		},
		{
			name:  "search input is quoted, not interpreted as a regex",
			query: NoteQuery{Search: "a.b*"},
			check: func(t *testing.T, filter bson.M) {
				or := filter["$or"].([]bson.M)
				regex := or[0]["title"].(primitive.Regex)
				assert.Equal(t, `a\.b\*`, regex.Pattern)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.query.Filter("user-1"))
		})
	}
}

func TestNoteQuerySort(t *testing.T) {
	tests := []struct {
		name      string
		query     NoteQuery
		wantField string
		wantOrder int
	}{
		{"default sort", NoteQuery{}, "updated_at", -1},
		{"title ascending", NoteQuery{SortBy: "title", SortOrder: "asc"}, "title", 1},
		{"createdAt maps to stored name", NoteQuery{SortBy: "createdAt", SortOrder: "desc"}, "created_at", -1},
		{"unknown field falls back to updatedAt", NoteQuery{SortBy: "dueDate"}, "updated_at", -1},
		{"unknown order falls back to desc", NoteQuery{SortBy: "title", SortOrder: "upwards"}, "title", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sort := tt.query.Sort()
			require.Len(t, sort, 1)
			assert.Equal(t, tt.wantField, sort[0].Key)
			assert.Equal(t, tt.wantOrder, sort[0].Value)
		})
	}
}
