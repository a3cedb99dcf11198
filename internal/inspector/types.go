package inspector

import "context"

// Query exposes the read-only repository facts the inspector needs.
// Implementations report failures as errors; the Inspector decides how
// those degrade.
type Query interface {
	// TopLevel returns the top-level directory of the working tree.
	TopLevel(ctx context.Context) (string, error)
	// RemoteURL returns the URL configured for the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)
	// CurrentBranch returns the short name of the checked-out branch.
	CurrentBranch(ctx context.Context) (string, error)
	// BranchExists reports whether refs/heads/<name> exists.
	BranchExists(ctx context.Context, name string) bool
}

// CommandRunner defines the interface for executing git commands.
type CommandRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

const (
	// DefaultRemote is the remote inspected when none is configured.
	DefaultRemote = "origin"
)

// DefaultBaseBranches lists the compare base candidates in preference order.
var DefaultBaseBranches = []string{"main", "master"}
