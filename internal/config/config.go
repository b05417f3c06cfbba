package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App      AppConfig
	AWS      AWSConfig
	Gemini   GeminiConfig
	Snapshot SnapshotConfig
	Log      LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type AWSConfig struct {
	Region       string
	TablePrefix  string
	ResumeBucket string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type SnapshotConfig struct {
	Dir string
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

const (
	defaultRegion      = "us-east-1"
	defaultTablePrefix = "resume"
	defaultBucket      = "resume-resumes"
	defaultModel       = "gemini-2.5-flash"
	defaultSnapshotDir = "data"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "resumeforge"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.AWS = AWSConfig{
		Region:       opt("AWS_REGION", defaultRegion),
		TablePrefix:  opt("TABLE_PREFIX", defaultTablePrefix),
		ResumeBucket: opt("RESUME_BUCKET", defaultBucket),
	}

	cfg.Gemini = GeminiConfig{
		APIKey: req("GEMINI_API_KEY"),
		Model:  opt("GEMINI_MODEL", defaultModel),
	}

	cfg.Snapshot = SnapshotConfig{
		Dir: opt("SNAPSHOT_DIR", defaultSnapshotDir),
	}

	cfg.Log = LogConfig{
		JSON:  strings.EqualFold(os.Getenv("LOG_JSON"), "true"),
		Debug: strings.EqualFold(os.Getenv("LOG_DEBUG"), "true"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
