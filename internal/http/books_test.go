package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project/reading-tracker/internal/entities"
)

func TestBooksAPI(t *testing.T) {
	t.Run("empty collection returns an empty list", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "GET", "/api/books", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("add book validates input", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/api/books", map[string]any{"author": "Herbert", "total_pages": 412})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, router, "POST", "/api/books", map[string]any{"title": "Dune", "total_pages": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, router, "POST", "/api/books", map[string]any{"title": "Dune", "total_pages": -3})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("add then list", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/api/books", map[string]any{
			"title": "Dune", "author": "Frank Herbert", "total_pages": 412,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, "GET", "/api/books", nil)
		require.Equal(t, http.StatusOK, w.Code)
		books := decodeJSON[[]entities.Book](t, w)
		require.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Zero(t, books[0].ReadPages)
		assert.False(t, books[0].IsFinished)
	})

	t.Run("progress update clamps to total pages", func(t *testing.T) {
		router, st, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/api/books", map[string]any{"title": "Dune", "total_pages": 100})
		id := st.Books().Get()[0].ID

		w := doJSON(t, router, "PATCH", "/api/books/"+id+"/progress", map[string]any{"read_pages": 150})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 100, st.Books().Get()[0].ReadPages)

		// missing body field
		w = doJSON(t, router, "PATCH", "/api/books/"+id+"/progress", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown book id is a silent no-op", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "PATCH", "/api/books/nope/progress", map[string]any{"read_pages": 10})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("finish book", func(t *testing.T) {
		router, st, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/api/books", map[string]any{"title": "Dune", "total_pages": 412})
		id := st.Books().Get()[0].ID

		w := doJSON(t, router, "POST", "/api/books/"+id+"/finish", map[string]any{"rating": 11})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, router, "POST", "/api/books/"+id+"/finish", map[string]any{"rating": 9, "review": "classic"})
		assert.Equal(t, http.StatusOK, w.Code)

		book := st.Books().Get()[0]
		assert.True(t, book.IsFinished)
		assert.Equal(t, 412, book.ReadPages)
		require.NotNil(t, book.FinishedDate)
	})

	t.Run("delete book keeps its notes", func(t *testing.T) {
		router, st, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/api/books", map[string]any{"title": "Dune", "total_pages": 412})
		id := st.Books().Get()[0].ID
		doJSON(t, router, "POST", "/api/notes", map[string]any{"book_id": id, "content": "spice"})

		w := doJSON(t, router, "DELETE", "/api/books/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, "GET", "/api/notes", nil)
		notes := decodeJSON[[]entities.Note](t, w)
		require.Len(t, notes, 1)
		assert.Equal(t, id, notes[0].BookID)
	})
}
