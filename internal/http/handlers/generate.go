package handlers

import (
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"picprompt/internal/catalog"
	"picprompt/internal/domain"
	"picprompt/internal/prompt"
	"picprompt/internal/storage"
)

var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

type generateResponse struct {
	RequestID string         `json:"request_id"`
	Labels    []domain.Label `json:"labels"`
	Prompt    string         `json:"prompt"`
	Text      string         `json:"text"`
}

// Generate runs one pipeline pass: intake, detect, compose, generate. The
// run is synchronous; the generator is never called when detection fails.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	image, err := a.readImage(w, r)
	if err != nil {
		a.fail(w, err)
		return
	}
	params, err := parseParams(r)
	if err != nil {
		a.fail(w, err)
		return
	}

	if a.Archive != nil {
		key := "uploads/" + uuid.NewString() + path.Ext(image.Name)
		if err := a.Archive.Put(ctx, storage.PutParams{Key: key, Data: image.Data, ContentType: image.MIMEType}); err != nil {
			a.Logger.Warn().Err(err).Str("key", key).Msg("archive upload failed")
		} else {
			defer func() {
				if err := a.Archive.Delete(ctx, key); err != nil {
					a.Logger.Warn().Err(err).Str("key", key).Msg("archive cleanup failed")
				}
			}()
		}
	}

	labels, err := a.Detector.DetectLabels(ctx, image)
	if err != nil {
		a.fail(w, err)
		return
	}

	composed := prompt.Compose(labels, params, a.ComposeOpts)
	full := prompt.WithInstruction(params.Instruction, composed)

	text, err := a.Generator.Generate(ctx, full, params)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.json(w, http.StatusOK, generateResponse{
		RequestID: chimw.GetReqID(ctx),
		Labels:    labels,
		Prompt:    composed,
		Text:      text,
	})
}

// readImage pulls the multipart upload, enforces the size cap, and verifies
// the format from the actual bytes rather than the declared content type.
func (a *App) readImage(w http.ResponseWriter, r *http.Request) (domain.Image, error) {
	maxBytes := a.Config.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return domain.Image{}, domain.NewValidationError("image", "upload too large or malformed")
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return domain.Image{}, domain.NewValidationError("image", "image file is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.Image{}, domain.NewValidationError("image", "failed to read upload")
	}
	if len(data) == 0 {
		return domain.Image{}, domain.NewValidationError("image", "uploaded file is empty")
	}

	mimeType := http.DetectContentType(data)
	if _, ok := allowedImageTypes[mimeType]; !ok {
		return domain.Image{}, domain.NewValidationError("image", "unsupported format, use png or jpeg")
	}

	name := header.Filename
	if path.Ext(name) == "" {
		name += allowedImageTypes[mimeType]
	}
	return domain.Image{Data: data, MIMEType: mimeType, Name: name}, nil
}

// parseParams reads the generation parameters from the form. Absent fields
// keep their defaults so an explicit temperature of zero survives.
func parseParams(r *http.Request) (domain.GenerationParams, error) {
	params := domain.DefaultGenerationParams()

	floats := []struct {
		field string
		dst   *float64
	}{
		{"temperature", &params.Temperature},
		{"top_p", &params.TopP},
		{"frequency_penalty", &params.FrequencyPenalty},
		{"presence_penalty", &params.PresencePenalty},
	}
	for _, f := range floats {
		raw := strings.TrimSpace(r.FormValue(f.field))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, domain.NewValidationError(f.field, "must be a number")
		}
		*f.dst = v
	}

	if raw := strings.TrimSpace(r.FormValue("max_tokens")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return params, domain.NewValidationError("max_tokens", "must be an integer")
		}
		params.MaxTokens = v
	}

	params.Style = catalog.NormalizeStyle(r.FormValue("style"))
	params.Artist = catalog.NormalizeArtist(r.FormValue("artist"))
	params.Modifiers = r.FormValue("modifiers")
	params.Instruction = r.FormValue("instruction")

	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}
