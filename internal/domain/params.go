package domain

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 256
	DefaultTopP        = 1.0
)

// GenerationParams are pass-throughs for the text-generation provider plus
// the optional prompt modifiers. The provider is the source of truth for
// acceptable ranges; validation here only rejects values no provider accepts.
type GenerationParams struct {
	Temperature      float64 `json:"temperature"`
	MaxTokens        int     `json:"max_tokens"`
	TopP             float64 `json:"top_p"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	PresencePenalty  float64 `json:"presence_penalty"`

	Style       string `json:"style,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Modifiers   string `json:"modifiers,omitempty"`
	Instruction string `json:"instruction,omitempty"`
}

// DefaultGenerationParams returns the parameter set used when the caller
// leaves everything unset. Temperature zero is a legal explicit choice, so
// callers overwrite individual fields rather than patching zero values.
func DefaultGenerationParams() GenerationParams {
	return GenerationParams{
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TopP:        DefaultTopP,
	}
}

// Validate checks the pass-through ranges.
func (p GenerationParams) Validate() error {
	if p.Temperature < 0 || p.Temperature > 2 {
		return NewValidationError("temperature", "must be between 0 and 2")
	}
	if p.MaxTokens < 1 {
		return NewValidationError("max_tokens", "must be at least 1")
	}
	if p.TopP < 0 || p.TopP > 1 {
		return NewValidationError("top_p", "must be between 0 and 1")
	}
	if p.FrequencyPenalty < 0 || p.FrequencyPenalty > 2 {
		return NewValidationError("frequency_penalty", "must be between 0 and 2")
	}
	if p.PresencePenalty < 0 || p.PresencePenalty > 2 {
		return NewValidationError("presence_penalty", "must be between 0 and 2")
	}
	return nil
}
