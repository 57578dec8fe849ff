package handlers

import (
	"net/http"

	"picprompt/internal/catalog"
	"picprompt/internal/web"
)

// Index serves the upload form with the catalog selectors populated.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	out, err := a.page.Render(web.PageData{
		Styles:  catalog.Styles(),
		Artists: catalog.Artists(),
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("render index")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(out)
}
