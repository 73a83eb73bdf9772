package config

import (
	"os"
	"strconv"
)

const (
	// Temporary directory prefix for per-request upload workspaces
	TempDirPrefix = "ffmpeg_api_"
)

// Config holds the service settings, read from the environment.
type Config struct {
	Port        string
	WorkDir     string
	OutputDir   string
	RenderSlots int
	MaxUploadMB int
	LogLevel    string
}

// Load reads the service configuration from the environment, applying
// defaults for anything unset.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		WorkDir:     getEnv("WORK_DIR", os.TempDir()),
		OutputDir:   getEnv("OUTPUT_DIR", "renders"),
		RenderSlots: getEnvInt("RENDER_SLOTS", 2),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 512),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(k, d string) string {
	if val, ok := os.LookupEnv(k); ok {
		return val
	}
	return d
}

func getEnvInt(k string, d int) int {
	val, ok := os.LookupEnv(k)
	if !ok {
		return d
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return d
	}
	return n
}
