package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/store"
)

type GoalsController struct {
	engine *engine.Engine
	store  *store.Store
}

func NewGoalsController(eng *engine.Engine, st *store.Store) *GoalsController {
	return &GoalsController{engine: eng, store: st}
}

// GetAllGoals returns the current goal collection snapshot.
// GET /api/goals
func (gc *GoalsController) GetAllGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gc.store.Goals().Get())
}

// AddGoal creates a new uncompleted goal.
// POST /api/goals
func (gc *GoalsController) AddGoal(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "description is required")
		return
	}

	if err := gc.engine.AddGoal(req.Description); err != nil {
		respondInternalError(c, err, "add goal")
		return
	}
	respondCreated(c, "goal added")
}

// ToggleGoal flips a goal's completion state.
// POST /api/goals/:id/toggle
func (gc *GoalsController) ToggleGoal(c *gin.Context) {
	if err := gc.engine.ToggleGoal(c.Param("id")); err != nil {
		respondInternalError(c, err, "toggle goal")
		return
	}
	respondSuccess(c, "goal toggled")
}

// DeleteGoal removes a goal.
// DELETE /api/goals/:id
func (gc *GoalsController) DeleteGoal(c *gin.Context) {
	if err := gc.engine.DeleteGoal(c.Param("id")); err != nil {
		respondInternalError(c, err, "delete goal")
		return
	}
	respondSuccess(c, "goal deleted")
}
