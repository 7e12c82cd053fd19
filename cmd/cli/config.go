package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "footprint"
	defaultAPIBase = "http://localhost:8080"
)

// cliConfig is read from $XDG_CONFIG_HOME/footprint/config.yaml.
type cliConfig struct {
	APIBase string `yaml:"api_base"`
	Format  string `yaml:"format"`
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// loadConfig returns defaults when path does not exist. API_BASE in the
// environment wins over the file.
func loadConfig(path string) (cliConfig, error) {
	cfg := cliConfig{APIBase: defaultAPIBase, Format: "markdown"}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		var file cliConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, err
		}
		if file.APIBase != "" {
			cfg.APIBase = file.APIBase
		}
		if file.Format != "" {
			cfg.Format = file.Format
		}
	}

	if v := os.Getenv("API_BASE"); v != "" {
		cfg.APIBase = v
	}
	return cfg, nil
}
