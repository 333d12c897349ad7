// Package config holds the CLI's file-backed configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the batch extraction configuration. Zero values fall back to
// the defaults from Default().
type Config struct {
	MaxFileSizeMB     int     `yaml:"max_file_size_mb"`
	MaxPages          int     `yaml:"max_pages"`
	HeadingSizeFactor float64 `yaml:"heading_size_factor"`
	VerticalMargin    float64 `yaml:"vertical_margin"`
	MinHeadingChars   int     `yaml:"min_heading_chars"`
	MaxHeadingWords   int     `yaml:"max_heading_words"`
	MinRepeatPages    int     `yaml:"min_repeat_pages"`
	MinGridRows       int     `yaml:"min_grid_rows"`
	Workers           int     `yaml:"workers"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxFileSizeMB:     50,
		MaxPages:          50,
		HeadingSizeFactor: 1.15,
		VerticalMargin:    0.08,
		MinHeadingChars:   2,
		MaxHeadingWords:   20,
		MinRepeatPages:    3,
		MinGridRows:       3,
		Workers:           0, // 0 means NumCPU
	}
}

// Load reads a YAML config file and overlays it on the defaults. Fields
// left at their zero value in the file keep the default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if file.MaxFileSizeMB > 0 {
		cfg.MaxFileSizeMB = file.MaxFileSizeMB
	}
	if file.MaxPages > 0 {
		cfg.MaxPages = file.MaxPages
	}
	if file.HeadingSizeFactor > 1 {
		cfg.HeadingSizeFactor = file.HeadingSizeFactor
	}
	if file.VerticalMargin > 0 && file.VerticalMargin < 0.5 {
		cfg.VerticalMargin = file.VerticalMargin
	}
	if file.MinHeadingChars > 0 {
		cfg.MinHeadingChars = file.MinHeadingChars
	}
	if file.MaxHeadingWords > 0 {
		cfg.MaxHeadingWords = file.MaxHeadingWords
	}
	if file.MinRepeatPages > 0 {
		cfg.MinRepeatPages = file.MinRepeatPages
	}
	if file.MinGridRows > 0 {
		cfg.MinGridRows = file.MinGridRows
	}
	if file.Workers > 0 {
		cfg.Workers = file.Workers
	}

	return cfg, nil
}
