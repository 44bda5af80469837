package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/store"
)

type ChallengesController struct {
	engine *engine.Engine
	store  *store.Store
}

func NewChallengesController(eng *engine.Engine, st *store.Store) *ChallengesController {
	return &ChallengesController{engine: eng, store: st}
}

// GetChallenge returns the reading target for a year.
// GET /api/challenges/:year
func (cc *ChallengesController) GetChallenge(c *gin.Context) {
	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	for _, challenge := range cc.store.YearlyChallenges().Get() {
		if challenge.Year == year {
			c.JSON(http.StatusOK, challenge)
			return
		}
	}
	respondNotFound(c, "yearly challenge")
}

// SaveChallenge sets the reading target for a year.
// PUT /api/challenges/:year
func (cc *ChallengesController) SaveChallenge(c *gin.Context) {
	year, ok := parseYearParam(c)
	if !ok {
		return
	}

	var req struct {
		Goal *int `json:"goal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "goal is required")
		return
	}
	if *req.Goal <= 0 {
		respondBadRequest(c, "goal must be a positive integer")
		return
	}

	if err := cc.engine.SaveYearlyChallenge(year, *req.Goal); err != nil {
		respondInternalError(c, err, "save yearly challenge")
		return
	}
	respondSuccess(c, "challenge saved")
}

func parseYearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 0 {
		respondBadRequest(c, "invalid year")
		return 0, false
	}
	return year, true
}
