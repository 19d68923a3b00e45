package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fjacquet/supply-report/internal/logging"

	"github.com/joho/godotenv"
)

var (
	envOnce sync.Once
	envFile string
	envErr  error
)

// LoadEnv loads variables from a .env file in the working directory or its
// parent, if one exists. Variables already set in the environment win.
// The file is read once per process; every call reports the same path
// ("" when none was found) and the same load error.
func LoadEnv() (string, error) {
	envOnce.Do(func() {
		envFile, envErr = loadEnvFrom(".env", filepath.Join("..", ".env"))
	})
	return envFile, envErr
}

// loadEnvFrom loads the first existing candidate.
func loadEnvFrom(candidates ...string) (string, error) {
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return candidate, fmt.Errorf("failed to load %s: %w", candidate, err)
		}
		return candidate, nil
	}
	return "", nil
}

// ConfigureLoggingFromConfig builds the application logger from config.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	if config == nil {
		return logging.NewLogrusAdapter("info", "text")
	}
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
