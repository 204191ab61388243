package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-project configuration, looked up in the
// project root.
const ConfigFile = ".readmegen.yml"

// Config carries the optional project settings. Every field has a flag or a
// derived default, so an absent config file is fine.
type Config struct {
	Name     string   `yaml:"name"`
	Version  string   `yaml:"version"`
	License  string   `yaml:"license"`
	Badges   []string `yaml:"badges"`
	Template string   `yaml:"template"`
	Input    string   `yaml:"input"`
	Output   string   `yaml:"output"`
}

// LoadConfig reads .readmegen.yml from the project root. A missing file
// yields a zero Config; a file that exists but does not parse is an error.
func LoadConfig(root string) (Config, error) {
	data, err := os.ReadFile(filepath.Join(root, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	return cfg, nil
}
