package config

import (
	"fmt"
	"strings"

	"github.com/goliatone/repolink/pkg/gitutil"
)

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("config validation errors:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate inspects the configuration for missing or invalid fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	var errors ValidationErrors
	errors = append(errors, validateGit(&cfg.Git)...)
	errors = append(errors, validateBrowser(&cfg.Browser)...)
	errors = append(errors, validateLogging(&cfg.Logging)...)

	if len(errors) > 0 {
		return errors
	}

	return nil
}

// ApplyDefaults fills every unset field with its default.
// It should be called after merging sources but before validation.
func ApplyDefaults(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{
			Field:   "config",
			Value:   nil,
			Message: "configuration cannot be nil",
		}
	}

	applyGitDefaults(&cfg.Git)
	applyLoggingDefaults(&cfg.Logging)

	return nil
}

func validateGit(git *GitConfig) []ValidationError {
	var errors []ValidationError

	validImpls := []string{GitImplementationNative, GitImplementationGoGit}
	if !contains(validImpls, git.Implementation) {
		errors = append(errors, ValidationError{
			Field:   "git.implementation",
			Value:   git.Implementation,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validImpls, ", ")),
		})
	}

	if strings.TrimSpace(git.Remote) == "" || strings.ContainsAny(git.Remote, " \t/") {
		errors = append(errors, ValidationError{
			Field:   "git.remote",
			Value:   git.Remote,
			Message: "must be a non-empty remote name without spaces or slashes",
		})
	}

	for _, branch := range git.BaseBranches {
		if err := gitutil.ValidateBranchName(branch); err != nil {
			errors = append(errors, ValidationError{
				Field:   "git.base_branches",
				Value:   branch,
				Message: err.Error(),
			})
		}
	}

	return errors
}

func validateBrowser(browser *BrowserConfig) []ValidationError {
	var errors []ValidationError

	if len(browser.Command) > 0 && strings.TrimSpace(browser.Command[0]) == "" {
		errors = append(errors, ValidationError{
			Field:   "browser.command",
			Value:   browser.Command,
			Message: "program name cannot be empty",
		})
	}

	for goos, cmd := range browser.Commands {
		if len(cmd) > 0 && strings.TrimSpace(cmd[0]) == "" {
			errors = append(errors, ValidationError{
				Field:   "browser.commands." + goos,
				Value:   cmd,
				Message: "program name cannot be empty",
			})
		}
	}

	return errors
}

func validateLogging(log *LoggingConfig) []ValidationError {
	var errors []ValidationError

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, log.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   log.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLevels, ", ")),
		})
	}

	validFormats := []string{"text", "json"}
	if !contains(validFormats, log.Format) {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Value:   log.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validFormats, ", ")),
		})
	}

	if log.Verbose && log.Quiet {
		errors = append(errors, ValidationError{
			Field:   "logging",
			Value:   nil,
			Message: "verbose and quiet cannot both be enabled",
		})
	}

	return errors
}

func applyGitDefaults(git *GitConfig) {
	if git.Implementation == "" {
		git.Implementation = GitImplementationNative
	}
	if git.Binary == "" {
		git.Binary = "git"
	}
	if git.Remote == "" {
		git.Remote = "origin"
	}
	if len(git.BaseBranches) == 0 {
		git.BaseBranches = []string{"main", "master"}
	}
}

func applyLoggingDefaults(log *LoggingConfig) {
	if log.Level == "" {
		switch {
		case log.Verbose:
			log.Level = "debug"
		case log.Quiet:
			log.Level = "error"
		default:
			log.Level = "warn"
		}
	}
	if log.Format == "" {
		log.Format = "text"
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
