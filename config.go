package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configuration settings
type Config struct {
	Window  WindowConfig  `json:"window"`
	Targets []Target      `json:"targets"`
	Logging LoggingConfig `json:"logging"`
}

// WindowConfig holds the launcher window geometry
type WindowConfig struct {
	Title       string  `json:"title"`
	Width       float32 `json:"width"`
	Height      float32 `json:"height"`
	CellPadding float32 `json:"cell_padding"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `json:"level"`
	Dir   string `json:"dir"` // empty: stderr only
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	exePath, _ := os.Executable()
	exeDir := filepath.Dir(exePath)

	jar := filepath.Join(exeDir, "Folder", "File")
	if runtime.GOOS == "windows" {
		jar = `C:\Folder\File`
	}

	return &Config{
		Window: WindowConfig{
			Title:       "Launcher",
			Width:       225,
			Height:      225,
			CellPadding: 10,
		},
		Targets: []Target{
			NewTarget("Launch A", "java", "-jar", jar),
			NewTarget("Launch B", "java", "-jar", jar),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads hardcoded configuration (no config file)
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the window geometry and every target
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Window.CellPadding < 0 {
		return fmt.Errorf("cell padding must not be negative, got %v", c.Window.CellPadding)
	}
	if len(c.Targets) == 0 {
		return errors.New("no launch targets configured")
	}
	for i, t := range c.Targets {
		if t.Label == "" {
			return fmt.Errorf("target %d: missing label", i)
		}
		if t.Program == "" {
			return fmt.Errorf("target %q: %w", t.Label, ErrEmptyProgram)
		}
	}
	return nil
}
