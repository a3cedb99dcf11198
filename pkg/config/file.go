package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configFileNames are checked, in order, inside the repolink config directory.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

// LoadFromFile reads configuration from the provided path. Files ending in
// .toml are decoded as TOML, everything else as YAML. Unknown keys are errors.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	cfg := New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, &FileError{Path: path, Err: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, &FileError{Path: path, Err: errors.New("unknown keys: " + strings.Join(keys, ", "))}
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, &FileError{Path: path, Err: err}
		}
	}

	cfg.Source = path
	return cfg, nil
}

// DiscoverConfigFile returns the first existing default config file, or ""
// when there is none. The search root is $XDG_CONFIG_HOME/repolink, falling
// back to ~/.config/repolink.
func DiscoverConfigFile(getEnv func(string) string) string {
	if getEnv == nil {
		getEnv = os.Getenv
	}

	dir := ""
	if xdg := strings.TrimSpace(getEnv("XDG_CONFIG_HOME")); xdg != "" {
		dir = filepath.Join(xdg, "repolink")
	} else if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".config", "repolink")
	}
	if dir == "" {
		return ""
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
