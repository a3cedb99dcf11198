package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag names shared by AddFlags and the flag extraction.
const (
	FlagConfigFile = "config"
	FlagGit        = "git"
	FlagRemote     = "remote"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
	FlagVerbose    = "verbose"
	FlagQuiet      = "quiet"
)

// FlagConfig holds the configuration values explicitly set on the command line.
type FlagConfig struct {
	Implementation string
	Remote         string
	LogLevel       string
	LogFormat      string
	Verbose        bool
	Quiet          bool

	verboseSet bool
	quietSet   bool
}

// AddFlags registers the configuration flags on cmd as persistent flags.
// Values are read back from the flag set by LoadFromFlags.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(FlagConfigFile, "c", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/repolink/config.yaml)")
	flags.String(FlagGit, "",
		"Repository inspection backend (native, go-git)")
	flags.String(FlagRemote, "",
		"Remote whose URL is used for links (default: origin)")

	// Logging control flags
	flags.BoolP(FlagVerbose, "v", false,
		"Verbose logging output (equivalent to --log-level=debug)")
	flags.BoolP(FlagQuiet, "q", false,
		"Suppress warnings (equivalent to --log-level=error)")
	flags.String(FlagLogLevel, "",
		"Logging level (debug, info, warn, error)")
	flags.String(FlagLogFormat, "",
		"Log output format (text, json)")
}

// ValidateFlags checks for mutually exclusive flags.
func (fc *FlagConfig) ValidateFlags() error {
	if fc.Verbose && fc.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	return nil
}

// ToConfig converts flag configuration to a Config struct.
// It emits only the values explicitly set via flags; callers should merge
// this result with other configuration sources to honour precedence rules.
func (fc *FlagConfig) ToConfig() (*Config, error) {
	config := New()

	config.Git.Implementation = strings.TrimSpace(fc.Implementation)
	config.Git.Remote = strings.TrimSpace(fc.Remote)

	if fc.verboseSet && fc.Verbose {
		config.Logging.Verbose = true
		config.Logging.Level = "debug"
	}
	if fc.quietSet && fc.Quiet {
		config.Logging.Quiet = true
		config.Logging.Level = "error"
	}
	if fc.LogLevel != "" {
		config.Logging.Level = strings.ToLower(fc.LogLevel)
	}
	if fc.LogFormat != "" {
		config.Logging.Format = strings.ToLower(fc.LogFormat)
	}

	return config, nil
}

// LoadFromFlags loads configuration from command-line flags using cobra.
func LoadFromFlags(cmd *cobra.Command) (*Config, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command cannot be nil")
	}

	// cmd.Flags() returns both local and inherited flags
	fc := extractFlagConfig(cmd.Flags())

	if err := fc.ValidateFlags(); err != nil {
		return nil, err
	}

	return fc.ToConfig()
}

// ConfigFileFlag returns the --config value when it was set explicitly.
func ConfigFileFlag(cmd *cobra.Command) string {
	if cmd == nil || !cmd.Flags().Changed(FlagConfigFile) {
		return ""
	}
	path, _ := cmd.Flags().GetString(FlagConfigFile)
	return path
}

// extractFlagConfig extracts flag values from a flag set into FlagConfig
func extractFlagConfig(flags *pflag.FlagSet) *FlagConfig {
	fc := &FlagConfig{}

	if flags.Changed(FlagGit) {
		fc.Implementation, _ = flags.GetString(FlagGit)
	}
	if flags.Changed(FlagRemote) {
		fc.Remote, _ = flags.GetString(FlagRemote)
	}
	if flags.Changed(FlagVerbose) {
		fc.Verbose, _ = flags.GetBool(FlagVerbose)
		fc.verboseSet = true
	}
	if flags.Changed(FlagQuiet) {
		fc.Quiet, _ = flags.GetBool(FlagQuiet)
		fc.quietSet = true
	}
	if flags.Changed(FlagLogLevel) {
		fc.LogLevel, _ = flags.GetString(FlagLogLevel)
	}
	if flags.Changed(FlagLogFormat) {
		fc.LogFormat, _ = flags.GetString(FlagLogFormat)
	}

	return fc
}
