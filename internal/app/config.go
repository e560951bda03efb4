package app

import (
	"errors"

	"github.com/specialistvlad/drushgo/internal/property"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BuildPaths   []string // hcl files or directories
	PropertyFile string   // optional YAML property file
	Defines      property.Defines

	// Pretend forces every task to only log its command line.
	Pretend bool
	Shell   string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.BuildPaths) == 0 {
		return nil, errors.New("at least one build file path is required")
	}
	for _, p := range cfg.BuildPaths {
		if p == "" {
			return nil, errors.New("build file paths cannot be empty")
		}
	}

	return &cfg, nil
}
