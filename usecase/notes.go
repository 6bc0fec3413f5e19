package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"feathernote/logger"
	"feathernote/model"
	"feathernote/repository"
	"feathernote/services"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotesService struct {
	NotesRepo    *repository.NotesRepo
	ActivityRepo *repository.ActivityRepo
}

// SaveNoteInput carries the caller-editable fields of a save. Tags may
// arrive as separate values or as comma-separated strings; both
// collapse into a normalized set.
type SaveNoteInput struct {
	Title   string
	Content string
	Tags    []string
	DueDate *time.Time
}

func (svc *NotesService) validate(in *SaveNoteInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return errors.New("note title is required")
	}
	if len(in.Title) > 200 {
		return errors.New("note title exceeds maximum length")
	}

	if strings.TrimSpace(in.Content) == "" {
		return errors.New("note content is required")
	}
	if len(in.Content) > 50000 {
		return errors.New("note content exceeds maximum length")
	}

	in.Tags = NormalizeTags(in.Tags)
	return nil
}

// NormalizeTags splits comma-separated entries, trims whitespace,
// drops empties and collapses duplicates. The result is sorted, which
// is also the rendering order.
func NormalizeTags(raw []string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0, len(raw))

	for _, entry := range raw {
		for _, tag := range strings.Split(entry, ",") {
			trimmed := strings.TrimSpace(tag)
			if trimmed == "" {
				continue
			}
			if _, dup := seen[trimmed]; dup {
				continue
			}
			seen[trimmed] = struct{}{}
			tags = append(tags, trimmed)
		}
	}

	sort.Strings(tags)
	return tags
}

// ListNotes returns the owner's active notes for the given query.
func (svc *NotesService) ListNotes(ctx context.Context, userID string, query repository.NoteQuery) ([]*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	notes, err := svc.NotesRepo.FindNotes(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (svc *NotesService) ListArchived(ctx context.Context, userID string) ([]*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.NotesRepo.GetArchivedNotes(ctx, userID)
}

// ListDue returns active notes with a due date, soonest first.
func (svc *NotesService) ListDue(ctx context.Context, userID string) ([]*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.NotesRepo.GetDueNotes(ctx, userID)
}

// ListTags returns the distinct sorted tags across the owner's active
// notes. Recomputed per call; there is no persisted tag registry.
func (svc *NotesService) ListTags(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	tags, err := svc.NotesRepo.DistinctTags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tags: %w", err)
	}
	sort.Strings(tags)
	return tags, nil
}

func (svc *NotesService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return svc.NotesRepo.GetNote(ctx, noteID, userID)
}

// SaveNote creates a note when id is absent or malformed, otherwise
// updates the owned note in place. A well-formed id that resolves to
// no owned note is a silent no-op returning the id unchanged, the same
// treatment every other mutation gives foreign ids. Either way it
// returns the id the caller should keep editing under.
func (svc *NotesService) SaveNote(ctx context.Context, userID, noteID string, in SaveNoteInput) (string, error) {
	if err := svc.validate(&in); err != nil {
		return "", err
	}

	if primitive.IsValidObjectID(noteID) {
		if _, err := svc.NotesRepo.GetNote(ctx, noteID, userID); err != nil {
			if errors.Is(err, repository.ErrNoteNotFound) {
				return noteID, nil
			}
			return "", err
		}

		err := svc.NotesRepo.UpdateNote(ctx, noteID, userID, repository.NoteUpdate{
			Title:   in.Title,
			Content: in.Content,
			Tags:    in.Tags,
			DueDate: in.DueDate,
		})
		if err != nil {
			return "", err
		}
		svc.logActivity(ctx, userID, "note.update", noteID)
		return noteID, nil
	}

	note := &model.Note{
		UserID:  userID,
		Title:   in.Title,
		Content: in.Content,
		Tags:    in.Tags,
		DueDate: in.DueDate,
	}
	id, err := svc.NotesRepo.CreateNote(ctx, note)
	if err != nil {
		return "", err
	}
	svc.logActivity(ctx, userID, "note.create", id)
	return id, nil
}

func (svc *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		return err
	}
	svc.logActivity(ctx, userID, "note.delete", noteID)
	return nil
}

// ArchiveNote moves a note to the archive and clears its pin.
// Archiving an already-archived note is a no-op success.
func (svc *NotesService) ArchiveNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.SetArchived(ctx, noteID, userID, true); err != nil {
		return err
	}
	svc.logActivity(ctx, userID, "note.archive", noteID)
	return nil
}

func (svc *NotesService) UnarchiveNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.SetArchived(ctx, noteID, userID, false); err != nil {
		return err
	}
	svc.logActivity(ctx, userID, "note.unarchive", noteID)
	return nil
}

func (svc *NotesService) PinNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.SetPinned(ctx, noteID, userID, true); err != nil {
		return err
	}
	svc.logActivity(ctx, userID, "note.pin", noteID)
	return nil
}

func (svc *NotesService) UnpinNote(ctx context.Context, noteID, userID string) error {
	if err := svc.NotesRepo.SetPinned(ctx, noteID, userID, false); err != nil {
		return err
	}
	svc.logActivity(ctx, userID, "note.unpin", noteID)
	return nil
}

// LockNote stores the hashed secret and marks the note locked.
func (svc *NotesService) LockNote(ctx context.Context, noteID, userID, secret string) error {
	if secret == "" {
		return errors.New("lock secret is required")
	}

	hash, err := services.HashSecret(secret)
	if err != nil {
		return err
	}
	if err := svc.NotesRepo.SetLock(ctx, noteID, userID, hash); err != nil {
		return err
	}
	svc.logActivity(ctx, userID, "note.lock", noteID)
	return nil
}

// UnlockNote reports whether the attempt matches the secret of the
// most recent lock. A match on a locked note also clears the locked
// flag; the stored secret is retained so repeated correct attempts
// keep succeeding. A mismatch is a boolean failure, never an error.
func (svc *NotesService) UnlockNote(ctx context.Context, noteID, userID, attempt string) (bool, error) {
	note, err := svc.NotesRepo.GetNote(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return false, nil
		}
		return false, err
	}

	if note.LockSecret == "" {
		return false, nil
	}
	if !services.CompareSecrets(note.LockSecret, attempt) {
		return false, nil
	}

	if note.Locked {
		if err := svc.NotesRepo.ClearLocked(ctx, noteID, userID); err != nil {
			return false, err
		}
		svc.logActivity(ctx, userID, "note.unlock", noteID)
	}
	return true, nil
}

// logActivity is best-effort: a failed audit write never fails the
// operation that triggered it.
func (svc *NotesService) logActivity(ctx context.Context, userID, action, noteID string) {
	if svc.ActivityRepo == nil {
		return
	}
	err := svc.ActivityRepo.Record(ctx, &model.Activity{
		UserID:    userID,
		Action:    action,
		NoteID:    noteID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logger.Sugar.Warnw("failed to record activity", "action", action, "error", err)
	}
}
