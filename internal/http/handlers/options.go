package handlers

import (
	"net/http"

	"picprompt/internal/catalog"
	"picprompt/internal/domain"
)

// Options returns the selector choices and parameter defaults so non-browser
// clients can mirror the UI controls.
func (a *App) Options(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"styles":  catalog.Styles(),
		"artists": catalog.Artists(),
		"defaults": map[string]any{
			"temperature": domain.DefaultTemperature,
			"max_tokens":  domain.DefaultMaxTokens,
			"top_p":       domain.DefaultTopP,
		},
	})
}
