package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/entities"
	"github.com/project/reading-tracker/internal/stats"
	"github.com/project/reading-tracker/internal/store"
)

// StatsResponse carries the derived statistics over the current snapshots.
type StatsResponse struct {
	Weekly         []entities.DailyStat `json:"weekly"`
	TotalPagesRead int                  `json:"total_pages_read"`
	ReadingStreak  int                  `json:"reading_streak"`
}

type StatsController struct {
	store *store.Store
	now   func() time.Time
}

func NewStatsController(st *store.Store, now func() time.Time) *StatsController {
	if now == nil {
		now = time.Now
	}
	return &StatsController{store: st, now: now}
}

// GetStats recomputes all derived statistics from the current state.
// GET /api/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	books := sc.store.Books().Get()
	raw := sc.store.DailyStats().Get()

	c.JSON(http.StatusOK, StatsResponse{
		Weekly:         stats.WeeklyStats(raw),
		TotalPagesRead: stats.TotalPagesRead(books),
		ReadingStreak:  stats.ReadingStreak(raw, sc.now()),
	})
}
