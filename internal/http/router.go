package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/database"
	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/store"
)

// RouterConfig carries all router dependencies, keeping NewRouter's
// signature stable as the surface grows.
type RouterConfig struct {
	Engine   *engine.Engine
	Store    *store.Store
	Database *database.Database
	Now      func() time.Time
	Version  string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	books := NewBooksController(cfg.Engine, cfg.Store)
	goals := NewGoalsController(cfg.Engine, cfg.Store)
	notes := NewNotesController(cfg.Engine, cfg.Store)
	statistics := NewStatsController(cfg.Store, cfg.Now)
	rating := NewRatingController(cfg.Engine, cfg.Store)
	challenges := NewChallengesController(cfg.Engine, cfg.Store)
	settings := NewSettingsController(cfg.Engine, cfg.Store)
	events := NewEventsController(cfg.Store)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/api/books", books.GetAllBooks)
	router.POST("/api/books", books.AddBook)
	router.PATCH("/api/books/:id/progress", books.UpdateProgress)
	router.POST("/api/books/:id/finish", books.FinishBook)
	router.DELETE("/api/books/:id", books.DeleteBook)

	// Goals API endpoints
	router.GET("/api/goals", goals.GetAllGoals)
	router.POST("/api/goals", goals.AddGoal)
	router.POST("/api/goals/:id/toggle", goals.ToggleGoal)
	router.DELETE("/api/goals/:id", goals.DeleteGoal)

	// Notes API endpoints
	router.GET("/api/notes", notes.GetAllNotes)
	router.POST("/api/notes", notes.AddNote)
	router.DELETE("/api/notes/:id", notes.DeleteNote)

	// Derived statistics
	router.GET("/api/stats", statistics.GetStats)

	// App rating (singleton)
	router.GET("/api/rating", rating.GetRating)
	router.PUT("/api/rating", rating.SaveRating)

	// Yearly challenges
	router.GET("/api/challenges/:year", challenges.GetChallenge)
	router.PUT("/api/challenges/:year", challenges.SaveChallenge)

	// App settings (singleton)
	router.GET("/api/settings", settings.GetSettings)
	router.PUT("/api/settings", settings.SaveSettings)

	// Live state stream
	router.GET("/api/events", events.Stream)

	return router
}
