package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig holds the optional buildtool.toml project configuration.
// Command-line flags take precedence over every value in it.
type fileConfig struct {
	Build struct {
		Modules []string `toml:"modules"`
		OutDir  string   `toml:"out_dir"`
		Jobs    int      `toml:"jobs"`
	} `toml:"build"`
}

// loadConfig reads the configuration file at path. A missing file is not
// an error when the caller did not ask for a specific one.
func loadConfig(path string, explicit bool) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to load config %q: %w", path, err)
	}

	return &cfg, nil
}
