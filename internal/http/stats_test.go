package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsAPI(t *testing.T) {
	t.Run("empty state still yields seven buckets", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "GET", "/api/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeJSON[StatsResponse](t, w)
		require.Len(t, resp.Weekly, 7)
		assert.Zero(t, resp.TotalPagesRead)
		assert.Zero(t, resp.ReadingStreak)
	})

	t.Run("derived from book progress", func(t *testing.T) {
		router, st, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/api/books", map[string]any{"title": "Dune", "total_pages": 412})
		id := st.Books().Get()[0].ID
		doJSON(t, router, "PATCH", "/api/books/"+id+"/progress", map[string]any{"read_pages": 42})

		w := doJSON(t, router, "GET", "/api/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeJSON[StatsResponse](t, w)
		assert.Equal(t, 42, resp.TotalPagesRead)

		// The router clock is pinned to Friday; the 42 pages land there.
		require.Len(t, resp.Weekly, 7)
		assert.Equal(t, "Fri", resp.Weekly[4].Day)
		assert.Equal(t, 42, resp.Weekly[4].Pages)
		assert.Equal(t, 1, resp.ReadingStreak)
	})
}
