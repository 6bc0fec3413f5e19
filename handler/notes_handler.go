package handler

import (
	"errors"

	"feathernote/dto"
	"feathernote/middleware"
	"feathernote/repository"
	"feathernote/usecase"
	"feathernote/utils"

	"github.com/gin-gonic/gin"
)

func ListNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	query := repository.NoteQuery{
		Tag:       c.Query("tag"),
		Search:    c.Query("q"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	notes, err := notesService.ListNotes(c.Request.Context(), userID, query)
	if err != nil {
		utils.InternalError(c, "Failed to load notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func ListArchivedNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	notes, err := notesService.ListArchived(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load archived notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

// ListDueNotesHandler feeds the calendar view: active notes carrying a
// due date, soonest first.
func ListDueNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	notes, err := notesService.ListDue(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load due notes")
		return
	}

	utils.Success(c, dto.ToNoteResponses(notes))
}

func ListTagsHandler(c *gin.Context, notesService *usecase.NotesService) {
	userID := c.GetString("user_id")

	tags, err := notesService.ListTags(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load tags")
		return
	}

	utils.Success(c, tags)
}

func GetNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	note, err := notesService.GetNote(c.Request.Context(), noteID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		utils.InternalError(c, "Failed to load note")
		return
	}

	utils.Success(c, dto.ToNoteResponse(note))
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	saveNote(c, notesService, "")
}

func UpdateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	saveNote(c, notesService, c.Param("id"))
}

func saveNote(c *gin.Context, notesService *usecase.NotesService, noteID string) {
	userID := c.GetString("user_id")

	var req dto.SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	id, err := notesService.SaveNote(c.Request.Context(), userID, noteID, usecase.SaveNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		DueDate: req.DueDate,
	})
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("save").Inc()
	utils.Success(c, gin.H{"id": id})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		utils.InternalError(c, "Failed to delete note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("delete").Inc()
	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}

func ArchiveNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.ArchiveNote(c.Request.Context(), noteID, userID); err != nil {
		utils.InternalError(c, "Failed to archive note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("archive").Inc()
	utils.Success(c, gin.H{"message": "Note archived successfully"})
}

func UnarchiveNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.UnarchiveNote(c.Request.Context(), noteID, userID); err != nil {
		utils.InternalError(c, "Failed to unarchive note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("unarchive").Inc()
	utils.Success(c, gin.H{"message": "Note unarchived successfully"})
}

func PinNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.PinNote(c.Request.Context(), noteID, userID); err != nil {
		utils.InternalError(c, "Failed to pin note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("pin").Inc()
	utils.Success(c, gin.H{"message": "Note pinned successfully"})
}

func UnpinNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	if err := notesService.UnpinNote(c.Request.Context(), noteID, userID); err != nil {
		utils.InternalError(c, "Failed to unpin note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("unpin").Inc()
	utils.Success(c, gin.H{"message": "Note unpinned successfully"})
}

func LockNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.LockNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := notesService.LockNote(c.Request.Context(), noteID, userID, req.Secret); err != nil {
		utils.InternalError(c, "Failed to lock note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("lock").Inc()
	utils.Success(c, gin.H{"message": "Note locked successfully"})
}

// UnlockNoteHandler returns a boolean match result; a wrong attempt is
// a normal response so the client can prompt re-entry.
func UnlockNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("id")
	userID := c.GetString("user_id")

	var req dto.UnlockNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	match, err := notesService.UnlockNote(c.Request.Context(), noteID, userID, req.Attempt)
	if err != nil {
		utils.InternalError(c, "Failed to unlock note")
		return
	}

	middleware.NotesOperationsTotal.WithLabelValues("unlock").Inc()
	utils.Success(c, dto.UnlockNoteResponse{Match: match})
}
