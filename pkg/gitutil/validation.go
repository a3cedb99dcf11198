package gitutil

import (
	"fmt"
	"strings"
)

// ValidateBranchName validates a git branch name against the rules of
// git check-ref-format. Git imposes no length limit.
// Returns an error if the name is invalid.
func ValidateBranchName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("branch name cannot be empty")
	}

	// Check for invalid patterns
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("branch name cannot start or end with '/'")
	}

	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with '-'")
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("branch name cannot contain '..'")
	}

	if strings.Contains(name, "//") {
		return fmt.Errorf("branch name cannot contain '//'")
	}

	if strings.Contains(name, "@{") || name == "@" {
		return fmt.Errorf("branch name cannot contain '@{' or be '@'")
	}

	if strings.HasSuffix(name, ".lock") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("branch name cannot end with '.lock' or '.'")
	}

	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") || strings.HasSuffix(component, ".lock") {
			return fmt.Errorf("branch name components cannot start with '.' or end with '.lock'")
		}
	}

	if strings.ContainsAny(name, " ~^:?*[\\") {
		return fmt.Errorf("branch name cannot contain spaces or any of ~^:?*[\\")
	}

	// Check for control characters
	for _, c := range name {
		if c < 32 || c == 127 {
			return fmt.Errorf("branch name cannot contain control characters")
		}
	}

	return nil
}
