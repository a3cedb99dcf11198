package opener

import (
	"errors"
	"fmt"
)

// BranchNotFoundError is returned when an explicitly requested branch does
// not exist locally.
type BranchNotFoundError struct {
	Branch string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch '%s' does not exist", e.Branch)
}

// InvalidRequestError reports a malformed request field.
type InvalidRequestError struct {
	Field   string
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsBranchNotFound reports whether err is a *BranchNotFoundError.
func IsBranchNotFound(err error) bool {
	var target *BranchNotFoundError
	return errors.As(err, &target)
}

// IsInvalidRequest reports whether err is an *InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var target *InvalidRequestError
	return errors.As(err, &target)
}
