package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv. Flags given on the command line
// take precedence because they are applied afterwards.
const (
	EnvClassifier  = "TYPECOPY_CLASSIFIER"
	EnvFileCommand = "TYPECOPY_FILE_CMD"
	EnvLogFile     = "TYPECOPY_LOG"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set in the environment are not overridden.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays TYPECOPY_* environment variables onto cfg.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvClassifier)); v != "" {
		cfg.Classifier = ClassifierKind(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv(EnvFileCommand)); v != "" {
		cfg.FileCommand = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
}
