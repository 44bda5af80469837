package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/store"
)

type BooksController struct {
	engine *engine.Engine
	store  *store.Store
}

func NewBooksController(eng *engine.Engine, st *store.Store) *BooksController {
	return &BooksController{engine: eng, store: st}
}

// GetAllBooks returns the current book collection snapshot.
// GET /api/books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	c.JSON(http.StatusOK, bc.store.Books().Get())
}

// AddBook creates a new unfinished book.
// POST /api/books
func (bc *BooksController) AddBook(c *gin.Context) {
	var req struct {
		Title      string `json:"title" binding:"required"`
		Author     string `json:"author"`
		TotalPages int    `json:"total_pages"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title is required")
		return
	}
	if req.TotalPages <= 0 {
		respondBadRequest(c, "total_pages must be a positive integer")
		return
	}

	if err := bc.engine.AddBook(req.Title, req.Author, req.TotalPages); err != nil {
		respondInternalError(c, err, "add book")
		return
	}
	respondCreated(c, "book added")
}

// UpdateProgress sets a book's read-page count.
// PATCH /api/books/:id/progress
func (bc *BooksController) UpdateProgress(c *gin.Context) {
	var req struct {
		ReadPages *int `json:"read_pages" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "read_pages is required")
		return
	}

	if err := bc.engine.UpdateReadPages(c.Param("id"), *req.ReadPages); err != nil {
		respondInternalError(c, err, "update read pages")
		return
	}
	respondSuccess(c, "progress updated")
}

// FinishBook marks a book finished with a rating and review.
// POST /api/books/:id/finish
func (bc *BooksController) FinishBook(c *gin.Context) {
	var req struct {
		Rating *int   `json:"rating" binding:"required"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "rating is required")
		return
	}
	if *req.Rating < 0 || *req.Rating > 10 {
		respondBadRequest(c, "rating must be between 0 and 10")
		return
	}

	if err := bc.engine.FinishBook(c.Param("id"), *req.Rating, req.Review); err != nil {
		respondInternalError(c, err, "finish book")
		return
	}
	respondSuccess(c, "book finished")
}

// DeleteBook removes a book. Notes referencing it stay behind.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	if err := bc.engine.DeleteBook(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	respondSuccess(c, "book deleted")
}
