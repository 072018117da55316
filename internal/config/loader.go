package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Settings file names searched in the config directory, in precedence
// order: TOML wins when both exist.
var settingsNames = []string{"config.toml", "config.yaml"}

// Resolve finds the settings file in dir. It returns an empty path when
// no settings file exists, which is not an error.
func Resolve(dir string) string {
	for _, name := range settingsNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads the settings file at path, dispatching on its extension.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	// Unmarshal over the zero value so unset fields are detectable.
	cfg = Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.normalize(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDir resolves and loads the settings file in dir, returning the
// loaded config and the path it came from (empty when defaults applied).
func LoadDir(dir string) (Config, string, error) {
	path := Resolve(dir)
	cfg, err := Load(path)
	return cfg, path, err
}
