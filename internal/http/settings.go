package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/project/reading-tracker/internal/engine"
	"github.com/project/reading-tracker/internal/entities"
	"github.com/project/reading-tracker/internal/store"
)

type SettingsController struct {
	engine *engine.Engine
	store  *store.Store
}

func NewSettingsController(eng *engine.Engine, st *store.Store) *SettingsController {
	return &SettingsController{engine: eng, store: st}
}

// GetSettings returns the singleton settings record, falling back to the
// default theme when nothing was ever saved.
// GET /api/settings
func (sc *SettingsController) GetSettings(c *gin.Context) {
	settings := sc.store.AppSettings().Get()
	if settings == nil {
		c.JSON(http.StatusOK, entities.AppSettings{ID: entities.SingletonID, ThemeID: entities.ThemeDefault})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings overwrites the singleton settings record.
// PUT /api/settings
func (sc *SettingsController) SaveSettings(c *gin.Context) {
	var req struct {
		ThemeID *int `json:"theme_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "theme_id is required")
		return
	}
	if *req.ThemeID < entities.ThemeDefault || *req.ThemeID > entities.ThemeLavender {
		respondBadRequest(c, "unknown theme_id")
		return
	}

	if err := sc.engine.SaveAppSettings(*req.ThemeID); err != nil {
		respondInternalError(c, err, "save settings")
		return
	}
	respondSuccess(c, "settings saved")
}
