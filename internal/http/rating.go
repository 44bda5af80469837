package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/store"
)

type RatingController struct {
	engine *engine.Engine
	store  *store.Store
}

func NewRatingController(eng *engine.Engine, st *store.Store) *RatingController {
	return &RatingController{engine: eng, store: st}
}

// GetRating returns the singleton app rating, 404 if the user never rated.
// GET /api/rating
func (rc *RatingController) GetRating(c *gin.Context) {
	rating := rc.store.AppRating().Get()
	if rating == nil {
		respondNotFound(c, "app rating")
		return
	}
	c.JSON(http.StatusOK, rating)
}

// SaveRating overwrites the singleton app rating.
// PUT /api/rating
func (rc *RatingController) SaveRating(c *gin.Context) {
	var req struct {
		Rating   *int   `json:"rating" binding:"required"`
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "rating is required")
		return
	}
	if *req.Rating < 0 || *req.Rating > 10 {
		respondBadRequest(c, "rating must be between 0 and 10")
		return
	}

	if err := rc.engine.SaveAppRating(*req.Rating, req.Feedback); err != nil {
		respondInternalError(c, err, "save app rating")
		return
	}
	respondSuccess(c, "rating saved")
}
