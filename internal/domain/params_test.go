package domain

import (
	"errors"
	"testing"
)

func TestDefaultGenerationParams(t *testing.T) {
	p := DefaultGenerationParams()
	if p.Temperature != 0.7 {
		t.Fatalf("Temperature = %f, want 0.7", p.Temperature)
	}
	if p.MaxTokens != 256 {
		t.Fatalf("MaxTokens = %d, want 256", p.MaxTokens)
	}
	if p.TopP != 1.0 {
		t.Fatalf("TopP = %f, want 1.0", p.TopP)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("defaults failed validation: %v", err)
	}
}

func TestGenerationParamsValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationParams)
	}{
		{"temperature too high", func(p *GenerationParams) { p.Temperature = 2.5 }},
		{"temperature negative", func(p *GenerationParams) { p.Temperature = -0.1 }},
		{"max tokens zero", func(p *GenerationParams) { p.MaxTokens = 0 }},
		{"top_p above one", func(p *GenerationParams) { p.TopP = 1.5 }},
		{"frequency penalty too high", func(p *GenerationParams) { p.FrequencyPenalty = 3 }},
		{"presence penalty negative", func(p *GenerationParams) { p.PresencePenalty = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultGenerationParams()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("error %v should match ErrInvalidParams", err)
			}
		})
	}
}

func TestGenerationParamsTemperatureZeroIsValid(t *testing.T) {
	p := DefaultGenerationParams()
	p.Temperature = 0
	if err := p.Validate(); err != nil {
		t.Fatalf("temperature 0 rejected: %v", err)
	}
}
