package server

import (
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MAX_UPLOAD_MB", "ALLOW_PATH_SOURCES", "SOURCE_DIR", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" || cfg.MaxUploadBytes != 10*1024*1024 || cfg.AllowPathSources || cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !filepath.IsAbs(cfg.SourceDir) {
		t.Fatalf("source dir should be absolute, got %q", cfg.SourceDir)
	}
	if cfg.CORSOrigins != nil {
		t.Fatalf("expected no CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("ALLOW_PATH_SOURCES", "true")
	t.Setenv("SOURCE_DIR", t.TempDir())
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9000" || cfg.MaxUploadBytes != 2*1024*1024 || !cfg.AllowPathSources || cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for key, value := range map[string]string{
		"MAX_UPLOAD_MB":      "ten",
		"ALLOW_PATH_SOURCES": "sometimes",
		"LOG_LEVEL":          "chatty",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}
