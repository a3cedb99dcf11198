// Package config assembles repolink configuration from defaults, a config
// file, REPOLINK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Builder orchestrates config assembly from various sources.
type Builder interface {
	FromFile(path string) Builder
	FromEnv() Builder
	FromFlags(cmd *cobra.Command) Builder
	WithEnvGetter(getter func(string) string) Builder
	Build() (*Config, error)
}

// NewBuilder returns a Builder with no sources; Build on it yields defaults.
func NewBuilder() Builder {
	return &builder{getEnv: os.Getenv}
}

type builder struct {
	getEnv func(string) string

	useFile  bool
	filePath string

	useEnv bool
	cmd    *cobra.Command
}

// FromFile loads the given file. An empty path means $REPOLINK_CONFIG or the
// first default file found; a missing default file is not an error.
func (b *builder) FromFile(path string) Builder {
	b.useFile = true
	b.filePath = path
	return b
}

// FromEnv loads REPOLINK_* environment variables.
func (b *builder) FromEnv() Builder {
	b.useEnv = true
	return b
}

// FromFlags loads values explicitly set on the command line.
func (b *builder) FromFlags(cmd *cobra.Command) Builder {
	b.cmd = cmd
	return b
}

// WithEnvGetter replaces os.Getenv, mostly for tests.
func (b *builder) WithEnvGetter(getter func(string) string) Builder {
	if getter != nil {
		b.getEnv = getter
	}
	return b
}

// Build merges the sources, applies defaults and validates the result.
func (b *builder) Build() (*Config, error) {
	cfg := New()

	if b.useFile {
		fileCfg, err := b.loadFile()
		if err != nil {
			return nil, err
		}
		cfg.merge(fileCfg)
	}

	if b.useEnv {
		envCfg, err := NewEnvParserWithGetter(b.getEnv).ParseEnv()
		if err != nil {
			return nil, err
		}
		cfg.merge(envCfg)
	}

	if b.cmd != nil {
		flagCfg, err := LoadFromFlags(b.cmd)
		if err != nil {
			return nil, fmt.Errorf("invalid flags: %w", err)
		}
		cfg.merge(flagCfg)
	}

	if err := ApplyDefaults(cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (b *builder) loadFile() (*Config, error) {
	path := strings.TrimSpace(b.filePath)
	if path == "" {
		path = strings.TrimSpace(b.getEnv(EnvConfigFile))
	}
	if path != "" {
		return LoadFromFile(path)
	}

	if discovered := DiscoverConfigFile(b.getEnv); discovered != "" {
		return LoadFromFile(discovered)
	}
	return nil, nil
}
