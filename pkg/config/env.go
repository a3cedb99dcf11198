package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvParser provides functionality to parse configuration from environment variables.
type EnvParser struct {
	// getEnv allows injection of environment variable retrieval for testing
	getEnv func(string) string
}

// NewEnvParser creates a new environment variable parser.
func NewEnvParser() *EnvParser {
	return &EnvParser{
		getEnv: os.Getenv,
	}
}

// NewEnvParserWithGetter creates a new environment variable parser with custom getter.
// This is primarily used for testing with mock environment variables.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{
		getEnv: getter,
	}
}

// ParseEnv parses all REPOLINK environment variables and returns a Config
// holding only the values that were set.
func (p *EnvParser) ParseEnv() (*Config, error) {
	var errs []string
	config := New()

	p.parseGit(config)
	p.parseBrowser(config)

	if err := p.parseLogging(config); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("environment variable parsing errors: %s", strings.Join(errs, "; "))
	}

	return config, nil
}

// parseGit parses git-related environment variables
func (p *EnvParser) parseGit(config *Config) {
	if impl := strings.TrimSpace(p.getEnv(EnvGitImplementation)); impl != "" {
		config.Git.Implementation = impl
	}

	if binary := strings.TrimSpace(p.getEnv(EnvGitBinary)); binary != "" {
		config.Git.Binary = binary
	}

	if remote := strings.TrimSpace(p.getEnv(EnvRemote)); remote != "" {
		config.Git.Remote = remote
	}

	if branches := p.getEnv(EnvBaseBranches); branches != "" {
		config.Git.BaseBranches = splitList(branches)
	}
}

// parseBrowser parses the launcher override. Only REPOLINK_BROWSER is read:
// an inherited BROWSER often names a terminal browser, which cannot run
// detached.
func (p *EnvParser) parseBrowser(config *Config) {
	if browser := strings.Fields(p.getEnv(EnvBrowser)); len(browser) > 0 {
		config.Browser.Command = browser
	}
}

// parseLogging parses logging-related environment variables
func (p *EnvParser) parseLogging(config *Config) error {
	var errs []string

	if level := strings.TrimSpace(p.getEnv(EnvLogLevel)); level != "" {
		config.Logging.Level = strings.ToLower(level)
	}

	if format := strings.TrimSpace(p.getEnv(EnvLogFormat)); format != "" {
		config.Logging.Format = strings.ToLower(format)
	}

	if verboseStr := p.getEnv(EnvVerbose); verboseStr != "" {
		verbose, err := p.parseBool(verboseStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvVerbose, err))
		} else {
			config.Logging.Verbose = verbose
		}
	}

	if quietStr := p.getEnv(EnvQuiet); quietStr != "" {
		quiet, err := p.parseBool(quietStr)
		if err != nil {
			errs = append(errs, fmt.Sprintf("invalid %s: %v", EnvQuiet, err))
		} else {
			config.Logging.Quiet = quiet
		}
	}

	if config.Logging.Verbose && config.Logging.Quiet {
		errs = append(errs, fmt.Sprintf("%s and %s cannot both be enabled", EnvVerbose, EnvQuiet))
	}

	if len(errs) > 0 {
		return fmt.Errorf("logging configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// parseBool accepts strconv booleans plus yes/no and on/off.
func (p *EnvParser) parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("must be a boolean value (true/false, yes/no, on/off), got %q", value)
	}
	return b, nil
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
