package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"picprompt/internal/domain"
	"picprompt/internal/infra"
	"picprompt/internal/prompt"
	"picprompt/internal/storage"
	"picprompt/internal/textgen"
	"picprompt/internal/vision"
	"picprompt/internal/web"
)

// App bundles the pipeline components behind the HTTP handlers. Every field
// is set once at startup; handlers never mutate shared state.
type App struct {
	Config      *infra.Config
	Logger      zerolog.Logger
	Detector    vision.Detector
	Generator   textgen.Generator
	Archive     storage.Store // nil disables upload archiving
	ComposeOpts prompt.Options

	page web.Page
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, detector vision.Detector, generator textgen.Generator, archive storage.Store) *App {
	return &App{
		Config:    cfg,
		Logger:    logger,
		Detector:  detector,
		Generator: generator,
		Archive:   archive,
		ComposeOpts: prompt.Options{
			TopK:     cfg.LabelMax,
			MaxChars: cfg.PromptMaxChars,
		},
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// fail maps a pipeline error onto the response envelope. Validation problems
// are the caller's fault; provider problems are reported as a bad gateway so
// the UI can tell the user which side broke.
func (a *App) fail(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		a.error(w, http.StatusBadRequest, "bad_request", validationErr.Error())
		return
	}
	var serviceErr *domain.ServiceError
	if errors.As(err, &serviceErr) {
		a.Logger.Error().Err(serviceErr.Err).Str("provider", serviceErr.Provider).Msg("provider call failed")
		a.error(w, http.StatusBadGateway, "provider_failure", serviceErr.Provider+" request failed")
		return
	}
	a.Logger.Error().Err(err).Msg("pipeline failed")
	a.error(w, http.StatusInternalServerError, "internal", "unexpected error")
}
