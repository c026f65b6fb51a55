// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// History backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration. Values come from environment
// variables (a .env file is honored), optionally overridden by a YAML config
// file pointed at by CONFIG_FILE or found at <data dir>/config.yaml.
type Config struct {
	Port      string `yaml:"port"`
	DataDir   string `yaml:"data_dir"`
	LogDir    string `yaml:"log_dir"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`
	DebugMode bool   `yaml:"debug_mode"`

	// Remote analysis service
	RemoteURL     string `yaml:"remote_url"`
	RemoteAPIKey  string `yaml:"remote_api_key"`
	RemoteTimeout int    `yaml:"remote_timeout_seconds"`

	// History persistence
	HistoryBackend string `yaml:"history_backend"` // file | sqlite
}

// Load builds the configuration from the environment and an optional YAML
// config file.
func Load() (*Config, error) {
	// .env is optional
	godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DataDir:        getEnv("DATA_DIR", "data"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogFile:        getEnv("LOG_FILE", ""),
		DebugMode:      getEnvBool("DEBUG_MODE", true),
		RemoteURL:      getEnv("REMOTE_API_URL", ""),
		RemoteAPIKey:   getEnv("REMOTE_API_KEY", ""),
		RemoteTimeout:  getEnvInt("REMOTE_TIMEOUT", 30),
		HistoryBackend: getEnv("HISTORY_BACKEND", BackendFile),
	}

	if err := cfg.mergeFile(); err != nil {
		return nil, err
	}

	switch cfg.HistoryBackend {
	case BackendFile, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown history backend %q (want %q or %q)",
			cfg.HistoryBackend, BackendFile, BackendSQLite)
	}

	for _, dir := range []string{cfg.DataDir, cfg.LogDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	return cfg, nil
}

func (c *Config) mergeFile() error {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = filepath.Join(c.DataDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// HistoryPath returns the backend-specific location of the history snapshot.
func (c *Config) HistoryPath() string {
	if c.HistoryBackend == BackendSQLite {
		return filepath.Join(c.DataDir, "history.db")
	}
	return filepath.Join(c.DataDir, "history.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
