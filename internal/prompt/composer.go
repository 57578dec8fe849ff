// Package prompt turns detected labels and user modifiers into the text sent
// to the generation provider. Composition is deterministic: identical inputs
// always produce the identical string.
package prompt

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"picprompt/internal/domain"
)

const (
	// DefaultTopK mirrors the label cap requested from the detection service.
	DefaultTopK = 7
	// DefaultMaxChars keeps the composed prompt comfortably inside the
	// generation provider's token budget.
	DefaultMaxChars = 600
	// FallbackSubject is emitted when no usable label survives filtering so
	// the provider never receives an empty prompt.
	FallbackSubject = "an abstract scene"

	clauseSeparator = ", "
)

// Options tune composition. Zero values fall back to the defaults above.
type Options struct {
	TopK     int
	MaxChars int
	Fallback string
}

func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.MaxChars <= 0 {
		o.MaxChars = DefaultMaxChars
	}
	if strings.TrimSpace(o.Fallback) == "" {
		o.Fallback = FallbackSubject
	}
	return o
}

// Compose builds the prompt clause list: label names highest-confidence first
// (ties keep their incoming order), then "in the style of X", then "by Y",
// then any free-text modifiers. Label names are lowercased and deduplicated
// case-insensitively, first occurrence wins. The result is clipped to
// MaxChars at a clause boundary, never mid-word.
func Compose(labels []domain.Label, params domain.GenerationParams, opts Options) string {
	opts = opts.withDefaults()

	parts := labelClauses(labels, opts.TopK)
	if len(parts) == 0 {
		parts = []string{opts.Fallback}
	}
	if style := strings.TrimSpace(params.Style); style != "" {
		parts = append(parts, "in the style of "+style)
	}
	if artist := strings.TrimSpace(params.Artist); artist != "" {
		parts = append(parts, "by "+artist)
	}
	if modifiers := normalizeWhitespace(params.Modifiers); modifiers != "" {
		parts = append(parts, modifiers)
	}

	return clip(parts, opts.MaxChars)
}

// WithInstruction prefixes the user's instruction text (when present) to the
// composed prompt the way the UI sends it to the provider.
func WithInstruction(instruction, composed string) string {
	instruction = normalizeWhitespace(instruction)
	if instruction == "" {
		return composed
	}
	return instruction + "\n" + composed
}

func labelClauses(labels []domain.Label, topK int) []string {
	ordered := make([]domain.Label, len(labels))
	copy(ordered, labels)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Confidence > ordered[j].Confidence
	})

	names := lo.FilterMap(ordered, func(l domain.Label, _ int) (string, bool) {
		name := strings.ToLower(normalizeWhitespace(l.Name))
		return name, name != ""
	})
	names = lo.Uniq(names)
	if len(names) > topK {
		names = names[:topK]
	}
	return names
}

// clip drops trailing clauses until the joined prompt fits. The first clause
// is always kept so the prompt stays non-empty.
func clip(parts []string, maxChars int) string {
	out := parts[0]
	for _, part := range parts[1:] {
		candidate := out + clauseSeparator + part
		if len(candidate) > maxChars {
			break
		}
		out = candidate
	}
	return out
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
