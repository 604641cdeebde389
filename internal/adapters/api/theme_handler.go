package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/theme"
)

// ThemeResponse represents a resolved palette
type ThemeResponse struct {
	Theme   string        `json:"theme"`
	Preset  string        `json:"preset"`
	Palette theme.Palette `json:"palette"`
}

// resolveTheme handles GET /api/theme requests
func (s *HTTPServerAdapter) resolveTheme(c *gin.Context) {
	mode := theme.ModeLight
	if raw := c.Query("theme"); raw != "" {
		parsed, err := theme.ParseMode(raw)
		if err != nil {
			s.handleError(c, err)
			return
		}
		mode = parsed
	}

	preset, err := theme.ParsePreset(c.Query("preset"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	custom := theme.Palette{
		Background: c.Query("background"),
		Foreground: c.Query("foreground"),
		Primary:    c.Query("primary"),
	}

	c.JSON(http.StatusOK, ThemeResponse{
		Theme:   string(mode),
		Preset:  preset.String(),
		Palette: theme.ResolveForMode(mode, preset, custom),
	})
}
