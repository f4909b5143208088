package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the learning tracker application
type Config struct {
	Database    DatabaseConfig
	Generation  GenerationConfig
	Quiz        QuizConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string
	Filename       string
	DirPermissions uint32
}

// GenerationConfig holds the text-generation endpoint configuration
type GenerationConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// QuizConfig holds quiz question count bounds
type QuizConfig struct {
	DefaultQuestions int
	MaxQuestions     int
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".lt")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "lt.db",
			DirPermissions: 0755,
		},
		Generation: GenerationConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-4o-mini",
			Timeout: 60 * time.Second,
		},
		Quiz: QuizConfig{
			DefaultQuestions: 5,
			MaxQuestions:     10,
		},
		Application: ApplicationConfig{
			Timeout: 120 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("LT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("LT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if perms := os.Getenv("LT_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Generation configuration
	if baseURL := os.Getenv("LT_GEN_BASE_URL"); baseURL != "" {
		c.Generation.BaseURL = baseURL
	}
	if model := os.Getenv("LT_GEN_MODEL"); model != "" {
		c.Generation.Model = model
	}
	if apiKey := os.Getenv("LT_GEN_API_KEY"); apiKey != "" {
		c.Generation.APIKey = apiKey
	}
	if timeout := os.Getenv("LT_GEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Generation.Timeout = d
		}
	}

	// Quiz configuration
	if count := os.Getenv("LT_QUIZ_DEFAULT_QUESTIONS"); count != "" {
		if n, err := strconv.Atoi(count); err == nil {
			c.Quiz.DefaultQuestions = n
		}
	}
	if count := os.Getenv("LT_QUIZ_MAX_QUESTIONS"); count != "" {
		if n, err := strconv.Atoi(count); err == nil {
			c.Quiz.MaxQuestions = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("LT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}

	if c.Generation.BaseURL == "" {
		return &ConfigError{Field: "generation.base_url", Message: "generation base URL cannot be empty"}
	}
	if c.Generation.Model == "" {
		return &ConfigError{Field: "generation.model", Message: "generation model cannot be empty"}
	}
	if c.Generation.Timeout <= 0 {
		return &ConfigError{Field: "generation.timeout", Message: "generation timeout must be positive"}
	}

	if c.Quiz.DefaultQuestions < 1 {
		return &ConfigError{Field: "quiz.default_questions", Message: "default question count must be at least 1"}
	}
	if c.Quiz.MaxQuestions < c.Quiz.DefaultQuestions {
		return &ConfigError{Field: "quiz.max_questions", Message: "max question count must be at least the default"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
