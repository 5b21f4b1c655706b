package server

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Port             string
	MaxUploadBytes   int64
	AllowPathSources bool
	SourceDir        string
	LogLevel         slog.Level
	CORSOrigins      []string
}

func LoadConfig() (Config, error) {
	cfg := Config{}

	cfg.Port = envOrDefault("PORT", "8080")

	maxUploadMB, err := parseIntEnv("MAX_UPLOAD_MB", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_UPLOAD_MB: %w", err)
	}
	cfg.MaxUploadBytes = maxUploadMB * 1024 * 1024

	cfg.AllowPathSources, err = strconv.ParseBool(envOrDefault("ALLOW_PATH_SOURCES", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ALLOW_PATH_SOURCES: %w", err)
	}

	absSourceDir, err := filepath.Abs(envOrDefault("SOURCE_DIR", "."))
	if err != nil {
		return Config{}, fmt.Errorf("resolve source dir: %w", err)
	}
	cfg.SourceDir = absSourceDir

	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	for _, origin := range strings.Split(envOrDefault("CORS_ORIGINS", ""), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseIntEnv(key string, fallback int64) (int64, error) {
	value := envOrDefault(key, "")
	if value == "" {
		return fallback, nil
	}

	num, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	return num, nil
}
