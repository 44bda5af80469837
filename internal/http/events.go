package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/stats"
	"github.com/project/reading-tracker/internal/store"
)

// EventsController streams state store snapshots to the client over
// server-sent events. Each subscription starts with the collection's
// current value (or its default before the first storage emission) and then
// follows every change, sharing one gateway watch with all other
// subscribers of the same collection.
type EventsController struct {
	store *store.Store
}

func NewEventsController(st *store.Store) *EventsController {
	return &EventsController{store: st}
}

// Stream pushes books, goals, notes and weekly-stat snapshots until the
// client disconnects.
// GET /api/events
func (ec *EventsController) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	books := ec.store.Books().Subscribe(ctx)
	goals := ec.store.Goals().Subscribe(ctx)
	notes := ec.store.Notes().Subscribe(ctx)
	daily := ec.store.DailyStats().Subscribe(ctx)

	c.Stream(func(w io.Writer) bool {
		select {
		case v, ok := <-books:
			if !ok {
				return false
			}
			c.SSEvent("books", v)
		case v, ok := <-goals:
			if !ok {
				return false
			}
			c.SSEvent("goals", v)
		case v, ok := <-notes:
			if !ok {
				return false
			}
			c.SSEvent("notes", v)
		case v, ok := <-daily:
			if !ok {
				return false
			}
			c.SSEvent("weekly_stats", stats.WeeklyStats(v))
		case <-ctx.Done():
			return false
		}
		return true
	})
}
