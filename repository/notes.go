package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"feathernote/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoteNotFound covers a malformed id, a missing document and a
// foreign owner alike; callers cannot tell the three apart.
var ErrNoteNotFound = errors.New("note not found")

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// NoteUpdate carries the caller-editable fields of a save.
type NoteUpdate struct {
	Title   string
	Content string
	Tags    []string
	DueDate *time.Time
}

// CreateNote inserts a new note for its owner and returns the assigned
// id. Both timestamps are set to the same instant.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) (string, error) {
	if note.UserID == "" {
		return "", errors.New("user ID is required")
	}

	now := time.Now().UTC()
	note.ID = primitive.NewObjectID()
	note.CreatedAt = now
	note.UpdatedAt = now
	note.Archived = false
	note.Pinned = false
	note.Locked = false

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		return "", err
	}
	return note.ID.Hex(), nil
}

// GetNote retrieves a specific note owned by userID.
func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, ErrNoteNotFound
	}

	var note model.Note
	err = r.MongoCollection.FindOne(ctx,
		bson.M{"_id": oid, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// FindNotes returns all active notes matching the query, unbounded.
func (r *NotesRepo) FindNotes(ctx context.Context, userID string, query NoteQuery) ([]*model.Note, error) {
	return r.find(ctx, query.Filter(userID), query.FindOptions())
}

// GetArchivedNotes retrieves all archived notes, newest change first.
func (r *NotesRepo) GetArchivedNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	return r.find(ctx, bson.M{"user_id": userID, "archived": true}, opts)
}

// GetDueNotes retrieves active notes carrying a due date, soonest
// first. This feeds the calendar view.
func (r *NotesRepo) GetDueNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	filter := bson.M{
		"user_id":  userID,
		"archived": bson.M{"$ne": true},
		"due_date": bson.M{"$exists": true, "$ne": nil},
	}
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	return r.find(ctx, filter, opts)
}

// UpdateNote applies the editable fields to an owned note. A malformed
// or foreign id is a silent no-op; mutation attempts on notes the
// caller does not own are ignored rather than surfaced.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, update NoteUpdate) error {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil
	}

	set := bson.M{
		"title":      update.Title,
		"content":    update.Content,
		"tags":       update.Tags,
		"due_date":   update.DueDate,
		"updated_at": time.Now().UTC(),
	}

	_, err = r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set})
	return err
}

// DeleteNote removes a note permanently, with the same silent no-op
// policy for malformed or foreign ids.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil
	}

	_, err = r.MongoCollection.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	return err
}

// SetArchived flips the archive state. Archiving always clears the pin;
// re-applying either direction is an idempotent $set.
func (r *NotesRepo) SetArchived(ctx context.Context, noteID, userID string, archived bool) error {
	set := bson.M{
		"archived":   archived,
		"updated_at": time.Now().UTC(),
	}
	if archived {
		set["pinned"] = false
	}
	return r.setFields(ctx, noteID, userID, set)
}

// SetPinned flips the pin state.
func (r *NotesRepo) SetPinned(ctx context.Context, noteID, userID string, pinned bool) error {
	return r.setFields(ctx, noteID, userID, bson.M{
		"pinned":     pinned,
		"updated_at": time.Now().UTC(),
	})
}

// SetLock stores the hashed secret and marks the note locked.
func (r *NotesRepo) SetLock(ctx context.Context, noteID, userID, secretHash string) error {
	return r.setFields(ctx, noteID, userID, bson.M{
		"locked":      true,
		"lock_secret": secretHash,
		"updated_at":  time.Now().UTC(),
	})
}

// ClearLocked marks the note unlocked. The stored secret stays so a
// later lock check against the same secret still succeeds.
func (r *NotesRepo) ClearLocked(ctx context.Context, noteID, userID string) error {
	return r.setFields(ctx, noteID, userID, bson.M{
		"locked":     false,
		"updated_at": time.Now().UTC(),
	})
}

// DistinctTags returns the distinct tag values across the owner's
// active notes.
func (r *NotesRepo) DistinctTags(ctx context.Context, userID string) ([]string, error) {
	filter := bson.M{
		"user_id":  userID,
		"archived": bson.M{"$ne": true},
	}

	values, err := r.MongoCollection.Distinct(ctx, "tags", filter)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if tag, ok := v.(string); ok {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (r *NotesRepo) setFields(ctx context.Context, noteID, userID string, set bson.M) error {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil
	}

	_, err = r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set})
	return err
}

func (r *NotesRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Note, error) {
	notes := []*model.Note{}

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
