package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ChatModel == "" || cfg.ImageModel == "" || cfg.VideoModel == "" {
		t.Fatalf("expected model defaults, got %+v", cfg)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Errorf("poll interval default: got %v, want 5s", cfg.PollInterval)
	}
	if cfg.MaxPollAttempts <= 0 {
		t.Errorf("max poll attempts default must be positive, got %d", cfg.MaxPollAttempts)
	}
	if cfg.ImageAspectRatio != "1:1" {
		t.Errorf("image aspect ratio default: got %q, want 1:1", cfg.ImageAspectRatio)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PRISM_POLL_INTERVAL", "1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("got key %q", cfg.GeminiAPIKey)
	}
	if cfg.PollInterval != time.Second {
		t.Errorf("got poll interval %v", cfg.PollInterval)
	}
}

func TestLoadAllowsMissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("startup must not fail without an API key: %v", err)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("got key %q, want empty", cfg.GeminiAPIKey)
	}
}
