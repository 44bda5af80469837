package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/store"
)

type NotesController struct {
	engine *engine.Engine
	store  *store.Store
}

func NewNotesController(eng *engine.Engine, st *store.Store) *NotesController {
	return &NotesController{engine: eng, store: st}
}

// GetAllNotes returns the current note collection snapshot, including notes
// whose book has since been deleted.
// GET /api/notes
func (nc *NotesController) GetAllNotes(c *gin.Context) {
	c.JSON(http.StatusOK, nc.store.Notes().Get())
}

// AddNote attaches a note to a book id. The id is deliberately not checked
// against existing books.
// POST /api/notes
func (nc *NotesController) AddNote(c *gin.Context) {
	var req struct {
		BookID  string `json:"book_id" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "book_id and content are required")
		return
	}

	if err := nc.engine.AddNote(req.BookID, req.Content); err != nil {
		respondInternalError(c, err, "add note")
		return
	}
	respondCreated(c, "note added")
}

// DeleteNote removes a note.
// DELETE /api/notes/:id
func (nc *NotesController) DeleteNote(c *gin.Context) {
	if err := nc.engine.DeleteNote(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete note")
		return
	}
	respondSuccess(c, "note deleted")
}
