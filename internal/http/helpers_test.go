package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/project/reading-tracker/internal/database"
	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/store"
)

// 2024-05-10 is a Friday.
var testFriday = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func setupTestRouter(t *testing.T) (*gin.Engine, *store.Store, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	gw := database.NewGateway(db)
	st := store.New(gw)
	now := func() time.Time { return testFriday }
	eng := engine.New(st, gw, now)

	router := NewRouter(RouterConfig{
		Engine:   eng,
		Store:    st,
		Database: db,
		Now:      now,
		Version:  "test",
	})

	cleanup := func() {
		st.Close()
		db.Close()
		os.Remove(dbPath)
	}
	return router, st, cleanup
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
