package textgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"picprompt/internal/domain"
)

func TestGeminiGeneratorGenerate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Fatalf("unexpected api key header: %s", got)
		}
		if !strings.Contains(r.URL.Path, "models/gemini-1.5-flash:generateContent") {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var payload geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(payload.Contents) != 1 || payload.Contents[0].Parts[0].Text != "cat, sunset" {
			t.Fatalf("prompt mismatch: %+v", payload.Contents)
		}
		if payload.GenerationConfig.Temperature != 0.7 {
			t.Fatalf("Temperature = %f, want 0.7", payload.GenerationConfig.Temperature)
		}
		if payload.GenerationConfig.MaxOutputTokens != 256 {
			t.Fatalf("MaxOutputTokens = %d, want 256", payload.GenerationConfig.MaxOutputTokens)
		}
		resp := geminiResponse{}
		resp.Candidates = []struct {
			Content geminiContent `json:"content"`
		}{{Content: geminiContent{Parts: []geminiPart{{Text: "a cat at sunset"}}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	g, err := NewGeminiGenerator(GeminiOptions{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewGeminiGenerator error: %v", err)
	}
	params := domain.DefaultGenerationParams()
	got, err := g.Generate(context.Background(), "cat, sunset", params)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "a cat at sunset" {
		t.Fatalf("Generate = %q, want %q", got, "a cat at sunset")
	}
}

func TestGeminiGeneratorUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer ts.Close()

	g, err := NewGeminiGenerator(GeminiOptions{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewGeminiGenerator error: %v", err)
	}
	_, err = g.Generate(context.Background(), "cat", domain.DefaultGenerationParams())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("error %v should match ErrProviderFailure", err)
	}
	if !strings.Contains(err.Error(), "quota exhausted") {
		t.Fatalf("error %v should carry the upstream message", err)
	}
}

func TestGeminiGeneratorEmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	g, err := NewGeminiGenerator(GeminiOptions{APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewGeminiGenerator error: %v", err)
	}
	if _, err := g.Generate(context.Background(), "cat", domain.DefaultGenerationParams()); err == nil {
		t.Fatal("expected error for empty candidates")
	}
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGeminiGenerator(GeminiOptions{}); err == nil {
		t.Fatal("expected error when api key missing")
	}
}
