// Package textgen holds the text-generation provider clients. Each client is
// a thin pass-through: the prompt and parameters go up unmodified and the
// provider's text comes back unmodified.
package textgen

import (
	"context"

	"picprompt/internal/domain"
)

// Providers selectable through configuration.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Generator produces text for a composed prompt. Implementations wrap
// upstream failures as domain.ServiceError.
type Generator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error)
}
