package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "sk-test")
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("ARTIFACT_MODE", "inline")
	defer os.Unsetenv("ARTIFACT_MODE")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.OpenAI.APIKey == "" || cfg.MongoDB.URI == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.OpenAI.Model == "" {
		t.Fatalf("expected default model, got empty")
	}
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	old := os.Getenv("OPENAI_API_KEY")
	os.Unsetenv("OPENAI_API_KEY")
	defer os.Setenv("OPENAI_API_KEY", old)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when OPENAI_API_KEY is unset")
	}
}

func TestLoadConfig_UploadModeNeedsTarget(t *testing.T) {
	os.Setenv("OPENAI_API_KEY", "sk-test")
	os.Setenv("ARTIFACT_MODE", "upload")
	os.Unsetenv("UPLOAD_URL")
	os.Unsetenv("MINIO_ENDPOINT")
	defer os.Unsetenv("ARTIFACT_MODE")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for upload mode without a target")
	}
}
