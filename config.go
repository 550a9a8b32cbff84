package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"wireframer/internal/wireframe"
)

type Config struct {
	SaveDirectory string `yaml:"save_directory"`
	Style         string `yaml:"style"`
	Rows          int    `yaml:"rows"`
	Cols          int    `yaml:"cols"`
	Tool          string `yaml:"tool"`
	LogFile       string `yaml:"log_file"`
	LogLevel      string `yaml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Style: "ascii",
		Rows:  defaultRows,
		Cols:  defaultCols,
		Tool:  "box",
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".wireframer.yaml")
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	config.SaveDirectory = expandPath(config.SaveDirectory)
	config.LogFile = expandPath(config.LogFile)
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if _, err := wireframe.ParseStyle(c.Style); err != nil {
		return err
	}
	if _, err := parseTool(c.Tool); err != nil {
		return err
	}
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("rows and cols must not be negative")
	}
	return nil
}

// expandPath resolves a leading ~ and makes relative paths absolute.
func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}

func parseTool(name string) (wireframe.Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "box", "":
		return wireframe.ToolBox, nil
	case "text":
		return wireframe.ToolText, nil
	case "select":
		return wireframe.ToolSelect, nil
	default:
		return wireframe.ToolBox, fmt.Errorf("unknown tool %q (want box, text or select)", name)
	}
}
