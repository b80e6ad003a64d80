// Package config reads the optional project-local configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the optional per-project configuration file, looked up at the
// project root.
const FileName = ".roadmapctl.toml"

// Config carries the overridable paths, all relative to the project root.
type Config struct {
	RoadmapFile string `toml:"roadmap_file"`
	SpecsDir    string `toml:"specs_dir"`
	EventLog    string `toml:"event_log"`
}

// Default returns the conventional layout.
func Default() *Config {
	return &Config{
		RoadmapFile: "roadmap/roadmap.json",
		SpecsDir:    "specs",
		EventLog:    "roadmap/events.jsonl",
	}
}

// Load reads root/.roadmapctl.toml over the defaults. A missing file is not
// an error; a malformed one is.
func Load(root string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return cfg, nil
}
