package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("TEXTGEN_PROVIDER", "")
	t.Setenv("PORT", "")
	t.Setenv("LABEL_MAX", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.TextProvider != "gemini" {
		t.Fatalf("TextProvider = %q, want %q", cfg.TextProvider, "gemini")
	}
	if cfg.LabelMax != 7 {
		t.Fatalf("LabelMax = %d, want 7", cfg.LabelMax)
	}
	if cfg.MaxUploadBytes != 5<<20 {
		t.Fatalf("MaxUploadBytes = %d, want %d", cfg.MaxUploadBytes, 5<<20)
	}
	if cfg.PromptMaxChars != 600 {
		t.Fatalf("PromptMaxChars = %d, want 600", cfg.PromptMaxChars)
	}
}

func TestLoadConfigRequiresProviderKey(t *testing.T) {
	t.Setenv("TEXTGEN_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when provider key missing")
	}
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("TEXTGEN_PROVIDER", "davinci")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoadConfigRejectsDualArchive(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("TEXTGEN_PROVIDER", "gemini")
	t.Setenv("ARCHIVE_BUCKET", "picpromptbucket")
	t.Setenv("ARCHIVE_DIR", "/tmp/uploads")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when both archive targets are set")
	}
}
