package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"feathernote/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "feathernote_test")
}

// setupNotesTest connects to the local test MongoDB and skips the test
// when none is running.
func setupNotesTest(t *testing.T) (*NotesRepo, func()) {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	repo := GetNotesRepo(client)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Database("feathernote_test").Collection("notes").Drop(ctx); err != nil {
			t.Errorf("Failed to clean up test collection: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}

	return repo, cleanup
}

func createTestNote(t *testing.T, repo *NotesRepo, userID, title string, tags []string) string {
	t.Helper()
	id, err := repo.CreateNote(context.Background(), &model.Note{
		UserID:  userID,
		Title:   title,
		Content: "Test content",
		Tags:    tags,
	})
	require.NoError(t, err)
	return id
}

func TestCreateNoteSetsDefaults(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	userID := uuid.NewString()
	id := createTestNote(t, repo, userID, "First", nil)

	note, err := repo.GetNote(context.Background(), id, userID)
	require.NoError(t, err)

	assert.False(t, note.Archived)
	assert.False(t, note.Pinned)
	assert.False(t, note.Locked)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestOwnerScoping(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	owner := uuid.NewString()
	other := uuid.NewString()
	id := createTestNote(t, repo, owner, "Private", nil)

	// The other user can neither read nor list the note.
	_, err := repo.GetNote(context.Background(), id, other)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	notes, err := repo.FindNotes(context.Background(), other, NoteQuery{})
	require.NoError(t, err)
	assert.Empty(t, notes)

	notes, err = repo.FindNotes(context.Background(), owner, NoteQuery{})
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestArchiveClearsPinAndIsIdempotent(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	userID := uuid.NewString()
	id := createTestNote(t, repo, userID, "Pinned note", nil)

	require.NoError(t, repo.SetPinned(context.Background(), id, userID, true))
	require.NoError(t, repo.SetArchived(context.Background(), id, userID, true))

	note, err := repo.GetNote(context.Background(), id, userID)
	require.NoError(t, err)
	assert.True(t, note.Archived)
	assert.False(t, note.Pinned)

	// Archiving twice equals archiving once.
	require.NoError(t, repo.SetArchived(context.Background(), id, userID, true))
	again, err := repo.GetNote(context.Background(), id, userID)
	require.NoError(t, err)
	assert.True(t, again.Archived)
	assert.False(t, again.Pinned)
}

func TestMutationsOnForeignOrMalformedIDsAreNoops(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	owner := uuid.NewString()
	intruder := uuid.NewString()
	id := createTestNote(t, repo, owner, "Keep me", nil)

	// Malformed ids never error.
	assert.NoError(t, repo.DeleteNote(context.Background(), "not-a-hex-id", owner))
	assert.NoError(t, repo.UpdateNote(context.Background(), "not-a-hex-id", owner, NoteUpdate{Title: "x", Content: "y"}))
	assert.NoError(t, repo.SetArchived(context.Background(), "not-a-hex-id", owner, true))

	// Foreign deletes leave the store unchanged.
	assert.NoError(t, repo.DeleteNote(context.Background(), id, intruder))

	note, err := repo.GetNote(context.Background(), id, owner)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", note.Title)
}

func TestFindNotesFiltersAndSorts(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	userID := uuid.NewString()
	createTestNote(t, repo, userID, "Alpha", []string{"work"})
	createTestNote(t, repo, userID, "Beta", []string{"home", "Foobar"})
	archivedID := createTestNote(t, repo, userID, "Gamma", []string{"work"})
	require.NoError(t, repo.SetArchived(context.Background(), archivedID, userID, true))

	// Tag filter is exact membership and skips archived notes.
	notes, err := repo.FindNotes(context.Background(), userID, NoteQuery{Tag: "work"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Alpha", notes[0].Title)

	// Search matches inside a tag, case-insensitively.
	notes, err = repo.FindNotes(context.Background(), userID, NoteQuery{Search: "foo"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Beta", notes[0].Title)

	// Title sort ascending.
	notes, err = repo.FindNotes(context.Background(), userID, NoteQuery{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Alpha", notes[0].Title)
	assert.Equal(t, "Beta", notes[1].Title)
}

func TestGetArchivedNotes(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	userID := uuid.NewString()
	createTestNote(t, repo, userID, "Active", nil)
	archivedID := createTestNote(t, repo, userID, "Archived", nil)
	require.NoError(t, repo.SetArchived(context.Background(), archivedID, userID, true))

	notes, err := repo.GetArchivedNotes(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Archived", notes[0].Title)
}

func TestDistinctTagsExcludesArchived(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	userID := uuid.NewString()
	firstID := createTestNote(t, repo, userID, "First", []string{"x"})
	createTestNote(t, repo, userID, "Second", []string{"y"})
	createTestNote(t, repo, userID, "Third", []string{"y"})
	require.NoError(t, repo.SetArchived(context.Background(), firstID, userID, true))

	// "x" lived only on the archived note, so it drops out; "y" is
	// reported once.
	tags, err := repo.DistinctTags(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"y"}, tags)
}

func TestGetDueNotes(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	userID := uuid.NewString()
	later := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Millisecond)
	sooner := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond)

	_, err := repo.CreateNote(context.Background(), &model.Note{
		UserID: userID, Title: "Later", Content: "c", DueDate: &later,
	})
	require.NoError(t, err)
	_, err = repo.CreateNote(context.Background(), &model.Note{
		UserID: userID, Title: "No due date", Content: "c",
	})
	require.NoError(t, err)
	_, err = repo.CreateNote(context.Background(), &model.Note{
		UserID: userID, Title: "Sooner", Content: "c", DueDate: &sooner,
	})
	require.NoError(t, err)

	notes, err := repo.GetDueNotes(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Sooner", notes[0].Title)
	assert.Equal(t, "Later", notes[1].Title)
}

func TestUpdateNoteRefreshesTimestamp(t *testing.T) {
	repo, cleanup := setupNotesTest(t)
	defer cleanup()

	userID := uuid.NewString()
	id := createTestNote(t, repo, userID, "Before", nil)

	before, err := repo.GetNote(context.Background(), id, userID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.UpdateNote(context.Background(), id, userID, NoteUpdate{
		Title:   "After",
		Content: "updated",
		Tags:    []string{"a"},
	}))

	after, err := repo.GetNote(context.Background(), id, userID)
	require.NoError(t, err)
	assert.Equal(t, "After", after.Title)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}
