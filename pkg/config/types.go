package config

// Config represents the complete configuration for repolink.
type Config struct {
	// Git contains repository inspection settings
	Git GitConfig `json:"git" yaml:"git" toml:"git"`

	// Browser contains URL launcher settings
	Browser BrowserConfig `json:"browser" yaml:"browser" toml:"browser"`

	// Logging contains logging level and output configuration
	Logging LoggingConfig `json:"logging" yaml:"logging" toml:"logging"`

	// Source records the config file that was loaded, if any.
	Source string `json:"-" yaml:"-" toml:"-"`
}

// GitConfig controls how repository facts are read.
type GitConfig struct {
	// Implementation selects the inspection backend.
	// Valid values: native (git binary), go-git (in-process)
	// Default: native
	Implementation string `json:"implementation" yaml:"implementation" toml:"implementation"`

	// Binary is the git executable used by the native backend.
	// Default: git
	Binary string `json:"binary,omitempty" yaml:"binary,omitempty" toml:"binary"`

	// Remote is the remote whose URL becomes the link base.
	// Default: origin
	Remote string `json:"remote" yaml:"remote" toml:"remote"`

	// BaseBranches are the compare base candidates, most preferred first.
	// The last entry is used when none exists locally.
	// Default: [main, master]
	BaseBranches []string `json:"base_branches" yaml:"base_branches" toml:"base_branches"`
}

// BrowserConfig controls how URLs are opened.
type BrowserConfig struct {
	// Command replaces the OS opener on every platform. A "%s" argument is
	// replaced by the URL; otherwise the URL is appended.
	Command []string `json:"command,omitempty" yaml:"command,omitempty" toml:"command"`

	// Commands adds or replaces per-GOOS openers, e.g. {"plan9": ["plumb"]}.
	Commands map[string][]string `json:"commands,omitempty" yaml:"commands,omitempty" toml:"commands"`
}

// LoggingConfig manages logging level and output format.
type LoggingConfig struct {
	// Level controls the logging verbosity level.
	// Valid values: debug, info, warn, error
	// Default: warn
	Level string `json:"level" yaml:"level" toml:"level"`

	// Format controls the log output format.
	// Valid values: text, json
	// Default: text
	Format string `json:"format" yaml:"format" toml:"format"`

	// Verbose is equivalent to setting Level to "debug"
	Verbose bool `json:"verbose" yaml:"verbose" toml:"verbose"`

	// Quiet is equivalent to setting Level to "error"
	Quiet bool `json:"quiet" yaml:"quiet" toml:"quiet"`
}

// Git implementation names.
const (
	GitImplementationNative = "native"
	GitImplementationGoGit  = "go-git"
)

// Environment variable mapping constants for configuration parsing
const (
	EnvConfigFile = "REPOLINK_CONFIG"

	// Git environment variables
	EnvGitImplementation = "REPOLINK_GIT_IMPLEMENTATION"
	EnvGitBinary         = "REPOLINK_GIT_BINARY"
	EnvRemote            = "REPOLINK_REMOTE"
	EnvBaseBranches      = "REPOLINK_BASE_BRANCHES"

	// Browser environment variables
	EnvBrowser = "REPOLINK_BROWSER"

	// Logging environment variables
	EnvLogLevel  = "REPOLINK_LOG_LEVEL"
	EnvLogFormat = "REPOLINK_LOG_FORMAT"
	EnvVerbose   = "REPOLINK_VERBOSE"
	EnvQuiet     = "REPOLINK_QUIET"
)

// New returns a Config populated with zero values.
func New() *Config {
	return &Config{}
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := New()
	_ = ApplyDefaults(cfg)
	return cfg
}

// merge copies every value set in src over dst.
func (c *Config) merge(src *Config) {
	if src == nil {
		return
	}

	if src.Git.Implementation != "" {
		c.Git.Implementation = src.Git.Implementation
	}
	if src.Git.Binary != "" {
		c.Git.Binary = src.Git.Binary
	}
	if src.Git.Remote != "" {
		c.Git.Remote = src.Git.Remote
	}
	if len(src.Git.BaseBranches) > 0 {
		c.Git.BaseBranches = append([]string(nil), src.Git.BaseBranches...)
	}

	if len(src.Browser.Command) > 0 {
		c.Browser.Command = append([]string(nil), src.Browser.Command...)
	}
	for goos, cmd := range src.Browser.Commands {
		if c.Browser.Commands == nil {
			c.Browser.Commands = make(map[string][]string)
		}
		c.Browser.Commands[goos] = append([]string(nil), cmd...)
	}

	if src.Logging.Level != "" {
		c.Logging.Level = src.Logging.Level
	}
	if src.Logging.Format != "" {
		c.Logging.Format = src.Logging.Format
	}
	if src.Logging.Verbose {
		c.Logging.Verbose = true
		c.Logging.Quiet = false
	}
	if src.Logging.Quiet {
		c.Logging.Quiet = true
		c.Logging.Verbose = false
	}

	if src.Source != "" {
		c.Source = src.Source
	}
}
