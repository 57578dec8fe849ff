package prompt

import (
	"strings"
	"testing"

	"picprompt/internal/domain"
)

func TestComposeOrdersDedupesAndAppendsModifiers(t *testing.T) {
	labels := []domain.Label{
		{Name: "cat", Confidence: 0.98},
		{Name: "sunset", Confidence: 0.91},
		{Name: "Cat", Confidence: 0.80},
	}
	params := domain.GenerationParams{Style: "impressionism", Artist: "Monet"}

	got := Compose(labels, params, Options{})
	want := "cat, sunset, in the style of impressionism, by Monet"
	if got != want {
		t.Fatalf("Compose = %q, want %q", got, want)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	labels := []domain.Label{
		{Name: "Beach", Confidence: 0.77},
		{Name: "palm tree", Confidence: 0.77},
		{Name: "Ocean", Confidence: 0.95},
	}
	params := domain.GenerationParams{Style: "watercolor"}

	first := Compose(labels, params, Options{})
	second := Compose(labels, params, Options{})
	if first != second {
		t.Fatalf("Compose not deterministic: %q vs %q", first, second)
	}
}

func TestComposeEqualConfidenceKeepsInputOrder(t *testing.T) {
	labels := []domain.Label{
		{Name: "harbor", Confidence: 0.5},
		{Name: "boat", Confidence: 0.5},
		{Name: "sky", Confidence: 0.9},
	}

	got := Compose(labels, domain.GenerationParams{}, Options{})
	if got != "sky, harbor, boat" {
		t.Fatalf("Compose = %q, want %q", got, "sky, harbor, boat")
	}
}

func TestComposeEmptyLabelsUsesFallback(t *testing.T) {
	got := Compose(nil, domain.GenerationParams{}, Options{})
	if got != FallbackSubject {
		t.Fatalf("Compose = %q, want fallback %q", got, FallbackSubject)
	}

	got = Compose(nil, domain.GenerationParams{Artist: "Monet"}, Options{})
	if got != FallbackSubject+", by Monet" {
		t.Fatalf("Compose = %q, want fallback with artist", got)
	}
}

func TestComposeBlankNamesAreDropped(t *testing.T) {
	labels := []domain.Label{
		{Name: "   ", Confidence: 0.99},
		{Name: "dog", Confidence: 0.42},
	}

	got := Compose(labels, domain.GenerationParams{}, Options{})
	if got != "dog" {
		t.Fatalf("Compose = %q, want %q", got, "dog")
	}
}

func TestComposeTopKLimitsLabels(t *testing.T) {
	labels := []domain.Label{
		{Name: "one", Confidence: 0.9},
		{Name: "two", Confidence: 0.8},
		{Name: "three", Confidence: 0.7},
	}

	got := Compose(labels, domain.GenerationParams{}, Options{TopK: 2})
	if got != "one, two" {
		t.Fatalf("Compose = %q, want %q", got, "one, two")
	}
}

func TestComposeClipsAtClauseBoundary(t *testing.T) {
	labels := []domain.Label{
		{Name: "mountain", Confidence: 0.9},
		{Name: "river", Confidence: 0.8},
		{Name: "an extremely long label that will not fit", Confidence: 0.7},
	}

	got := Compose(labels, domain.GenerationParams{}, Options{MaxChars: 20})
	if got != "mountain, river" {
		t.Fatalf("Compose = %q, want %q", got, "mountain, river")
	}
	if len(got) > 20 {
		t.Fatalf("Compose length = %d, want <= 20", len(got))
	}
}

func TestComposeKeepsFirstClauseEvenWhenOverCap(t *testing.T) {
	labels := []domain.Label{{Name: "a very long first label", Confidence: 0.9}}

	got := Compose(labels, domain.GenerationParams{}, Options{MaxChars: 5})
	if got == "" {
		t.Fatal("Compose returned empty prompt")
	}
	if !strings.Contains(got, "a very long first label") {
		t.Fatalf("Compose = %q, want first clause preserved", got)
	}
}

func TestComposeNormalizesModifierWhitespace(t *testing.T) {
	params := domain.GenerationParams{Modifiers: "  vivid   colors \n dramatic lighting "}
	labels := []domain.Label{{Name: "forest", Confidence: 0.9}}

	got := Compose(labels, params, Options{})
	want := "forest, vivid colors dramatic lighting"
	if got != want {
		t.Fatalf("Compose = %q, want %q", got, want)
	}
}

func TestWithInstruction(t *testing.T) {
	got := WithInstruction("  Make a list of ten prompts  ", "cat, sunset")
	want := "Make a list of ten prompts\ncat, sunset"
	if got != want {
		t.Fatalf("WithInstruction = %q, want %q", got, want)
	}

	if got := WithInstruction("   ", "cat"); got != "cat" {
		t.Fatalf("WithInstruction blank = %q, want %q", got, "cat")
	}
}
