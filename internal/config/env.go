package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// EnvPythonVersion overrides docs.python_version, which feeds the intersphinx link to the
// Python documentation.
const EnvPythonVersion = "DOCTOOLS_PYTHON_VERSION"

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads environment variables from the first readable .env/.env.local file.
// Existing process environment variables are not overwritten.
func loadEnvFile() {
	for _, envPath := range envFiles {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", "path", envPath)
			return
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPythonVersion); v != "" {
		cfg.Docs.PythonVersion = v
	}
}
