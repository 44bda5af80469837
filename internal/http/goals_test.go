package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project/reading-tracker/internal/entities"
)

func TestGoalsAPI(t *testing.T) {
	t.Run("add requires a description", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/api/goals", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("toggle twice restores the original state", func(t *testing.T) {
		router, st, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/api/goals", map[string]any{"description": "ten books this year"})
		id := st.Goals().Get()[0].ID

		w := doJSON(t, router, "POST", "/api/goals/"+id+"/toggle", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		goal := st.Goals().Get()[0]
		assert.True(t, goal.IsCompleted)
		require.NotNil(t, goal.CompletionDate)

		doJSON(t, router, "POST", "/api/goals/"+id+"/toggle", nil)
		goal = st.Goals().Get()[0]
		assert.False(t, goal.IsCompleted)
		assert.Nil(t, goal.CompletionDate)
	})

	t.Run("delete", func(t *testing.T) {
		router, st, cleanup := setupTestRouter(t)
		defer cleanup()

		doJSON(t, router, "POST", "/api/goals", map[string]any{"description": "finish Dune"})
		id := st.Goals().Get()[0].ID

		w := doJSON(t, router, "DELETE", "/api/goals/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, "GET", "/api/goals", nil)
		goals := decodeJSON[[]entities.Goal](t, w)
		assert.Empty(t, goals)
	})
}
