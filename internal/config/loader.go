package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config for the TOML file, with durations as strings
// ("60s", "2m") so the file stays human-editable.
type fileConfig struct {
	Database struct {
		Dir            string `toml:"dir"`
		Filename       string `toml:"filename"`
		DirPermissions uint32 `toml:"dir_permissions"`
	} `toml:"database"`
	Generation struct {
		BaseURL string `toml:"base_url"`
		Model   string `toml:"model"`
		APIKey  string `toml:"api_key"`
		Timeout string `toml:"timeout"`
	} `toml:"generation"`
	Quiz struct {
		DefaultQuestions int `toml:"default_questions"`
		MaxQuestions     int `toml:"max_questions"`
	} `toml:"quiz"`
	Application struct {
		Timeout string `toml:"timeout"`
	} `toml:"application"`
}

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader reading the default config
// file location
func NewLoader() *Loader {
	homeDir, _ := os.UserHomeDir()
	return &Loader{
		config:   NewConfig(),
		filePath: filepath.Join(homeDir, ".lt", "config.toml"),
	}
}

// NewLoaderWithFile creates a loader reading the given config file
func NewLoaderWithFile(filePath string) *Loader {
	return &Loader{
		config:   NewConfig(),
		filePath: filePath,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if present
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFromFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFromFile merges the TOML config file into the defaults. A missing
// file is not an error; a malformed one is.
func (l *Loader) loadFromFile() error {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", l.filePath, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", l.filePath, err)
	}

	l.merge(&fc)
	return nil
}

// merge applies the file values that were actually set onto the defaults
func (l *Loader) merge(fc *fileConfig) {
	if fc.Database.Dir != "" {
		l.config.Database.Dir = fc.Database.Dir
	}
	if fc.Database.Filename != "" {
		l.config.Database.Filename = fc.Database.Filename
	}
	if fc.Database.DirPermissions != 0 {
		l.config.Database.DirPermissions = fc.Database.DirPermissions
	}

	if fc.Generation.BaseURL != "" {
		l.config.Generation.BaseURL = fc.Generation.BaseURL
	}
	if fc.Generation.Model != "" {
		l.config.Generation.Model = fc.Generation.Model
	}
	if fc.Generation.APIKey != "" {
		l.config.Generation.APIKey = fc.Generation.APIKey
	}
	if d, err := time.ParseDuration(fc.Generation.Timeout); err == nil && d > 0 {
		l.config.Generation.Timeout = d
	}

	if fc.Quiz.DefaultQuestions > 0 {
		l.config.Quiz.DefaultQuestions = fc.Quiz.DefaultQuestions
	}
	if fc.Quiz.MaxQuestions > 0 {
		l.config.Quiz.MaxQuestions = fc.Quiz.MaxQuestions
	}

	if d, err := time.ParseDuration(fc.Application.Timeout); err == nil && d > 0 {
		l.config.Application.Timeout = d
	}
}
