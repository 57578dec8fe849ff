package vision

import (
	"context"

	"picprompt/internal/domain"
)

const (
	// DefaultMaxLabels matches the cap sent to the detection service.
	DefaultMaxLabels = 7
	// DefaultMinConfidence filters low-signal labels, on the service's
	// 0..100 scale.
	DefaultMinConfidence = 55.0
)

// Detector extracts labels from image bytes. Implementations surface
// upstream failures as domain.ServiceError and never retry.
type Detector interface {
	DetectLabels(ctx context.Context, image domain.Image) ([]domain.Label, error)
}
