package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config holds the settings that can be set from a config file
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// Only accept comments that start at the beginning of a line
	StrictComments bool `yaml:"strict_comments"`
}

// DefaultConfig returns the settings used when nothing else is given
func DefaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadConfig reads a yaml config file over the defaults
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(contents, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

// ConfigureLogger sets the level, format, and output of logger
func (c Config) ConfigureLogger(logger *log.Logger, out io.Writer) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	switch c.LogFormat {
	case "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	logger.SetLevel(level)
	logger.SetOutput(out)
	return nil
}
