package inspector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable marks a repository fact that could not be determined.
// It is not fatal: callers stop the operation that needed the value.
var ErrUnavailable = errors.New("inspector: value unavailable")

// UnavailableError describes which fact could not be determined and why.
type UnavailableError struct {
	What string
	Err  error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s unavailable: %v", e.What, e.Err)
	}
	return e.What + " unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any UnavailableError against ErrUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// GitError represents errors from git invocations.
type GitError struct {
	Operation string
	Args      []string
	Dir       string
	Stderr    string
	Err       error
}

func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed in %s: %v", e.Operation, e.Dir, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err means a repository fact was unavailable.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func unavailable(what string, err error) error {
	return &UnavailableError{What: what, Err: err}
}
