package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NoteQuery describes the list view: optional tag and search filters
// plus a whitelisted sort. Zero values mean "no filter, default sort".
type NoteQuery struct {
	Tag       string
	Search    string
	SortBy    string // title, createdAt, updatedAt
	SortOrder string // asc, desc
}

// sortFields maps the external sort names onto stored field names.
// Anything else falls back to updatedAt.
var sortFields = map[string]string{
	"title":     "title",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// Filter builds the owner-scoped Mongo filter. Archived notes are
// always excluded here; the archive view has its own query.
func (q NoteQuery) Filter(userID string) bson.M {
	filter := bson.M{
		"user_id":  userID,
		"archived": bson.M{"$ne": true},
	}

	if q.Tag != "" {
		filter["tags"] = q.Tag
	}

	if q.Search != "" {
		// Substring match, not a regex: quote user input.
		pattern := regexp.QuoteMeta(q.Search)
		filter["$or"] = []bson.M{
			{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"content": primitive.Regex{Pattern: pattern, Options: "i"}},
			{"tags": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	return filter
}

// Sort resolves the whitelisted sort key and order. Single-key sort;
// ties keep store-native order.
func (q NoteQuery) Sort() bson.D {
	field, ok := sortFields[q.SortBy]
	if !ok {
		field = "updated_at"
	}

	order := -1
	if q.SortOrder == "asc" {
		order = 1
	}

	return bson.D{{Key: field, Value: order}}
}

// FindOptions returns the find options for this query.
func (q NoteQuery) FindOptions() *options.FindOptions {
	return options.Find().SetSort(q.Sort())
}
