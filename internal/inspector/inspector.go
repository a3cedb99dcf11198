// Package inspector reads the repository facts needed to build hosting URLs:
// the working tree root, the remote base URL, the current branch and whether
// a local branch exists. Every lookup degrades to ErrUnavailable instead of
// failing hard.
package inspector

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/repolink/pkg/gitutil"
)

// Inspector answers repository questions on top of a Query.
type Inspector struct {
	query        Query
	remote       string
	baseBranches []string
	logger       Logger
}

// Option customises an Inspector.
type Option func(*Inspector)

// WithRemote selects the remote whose URL becomes the link base.
func WithRemote(name string) Option {
	return func(i *Inspector) {
		if name = strings.TrimSpace(name); name != "" {
			i.remote = name
		}
	}
}

// WithBaseBranches sets the default compare base candidates, most preferred first.
func WithBaseBranches(names []string) Option {
	return func(i *Inspector) {
		var cleaned []string
		for _, n := range names {
			if n = strings.TrimSpace(n); n != "" {
				cleaned = append(cleaned, n)
			}
		}
		if len(cleaned) > 0 {
			i.baseBranches = cleaned
		}
	}
}

// WithLogger attaches a logger for debug output on degraded lookups.
func WithLogger(logger Logger) Option {
	return func(i *Inspector) {
		i.logger = logger
	}
}

// New creates an Inspector over the given Query.
func New(query Query, opts ...Option) *Inspector {
	i := &Inspector{
		query:        query,
		remote:       DefaultRemote,
		baseBranches: append([]string(nil), DefaultBaseBranches...),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// FindRepositoryRoot returns the top-level directory of the enclosing working tree.
func (i *Inspector) FindRepositoryRoot(ctx context.Context) (string, error) {
	root, err := i.query.TopLevel(ctx)
	if err == nil && strings.TrimSpace(root) == "" {
		err = errors.New("empty top-level directory")
	}
	if err != nil {
		i.debug("repository root lookup failed", "error", err)
		return "", unavailable("repository root", err)
	}
	return strings.TrimSpace(root), nil
}

// RemoteURL returns the normalized browsable base URL of the configured remote.
func (i *Inspector) RemoteURL(ctx context.Context) (string, error) {
	raw, err := i.query.RemoteURL(ctx, i.remote)
	if err == nil && strings.TrimSpace(raw) == "" {
		err = errors.New("empty remote URL")
	}
	if err != nil {
		i.debug("remote URL lookup failed", "remote", i.remote, "error", err)
		return "", unavailable("remote "+i.remote, err)
	}

	base := gitutil.NormalizeRemoteURL(raw)
	if parsed, perr := gitutil.ParseRepoURL(raw); perr == nil {
		i.debug("resolved remote", "remote", i.remote, "host", parsed.Host,
			"owner", parsed.Owner, "name", parsed.Name, "protocol", parsed.Protocol)
	} else if i.logger != nil {
		i.logger.Warn("remote URL does not look like a hosted repository", "remote", i.remote, "url", raw)
	}
	return base, nil
}

// CurrentBranch returns the checked-out branch name; unavailable when HEAD is detached.
func (i *Inspector) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := i.query.CurrentBranch(ctx)
	if err == nil && strings.TrimSpace(branch) == "" {
		err = errors.New("empty branch name")
	}
	if err != nil {
		i.debug("current branch lookup failed", "error", err)
		return "", unavailable("current branch", err)
	}
	return strings.TrimSpace(branch), nil
}

// BranchExists reports whether a local branch with exactly this name exists.
// Names git would reject are never looked up.
func (i *Inspector) BranchExists(ctx context.Context, name string) bool {
	if err := gitutil.ValidateBranchName(name); err != nil {
		i.debug("rejected branch name", "branch", name, "error", err)
		return false
	}
	return i.query.BranchExists(ctx, name)
}

// DefaultBase picks the compare base: the first candidate that exists
// locally, otherwise the last candidate.
func (i *Inspector) DefaultBase(ctx context.Context) string {
	for _, name := range i.baseBranches {
		if i.BranchExists(ctx, name) {
			return name
		}
	}
	return i.baseBranches[len(i.baseBranches)-1]
}

func (i *Inspector) debug(msg string, args ...any) {
	if i.logger != nil {
		i.logger.Debug(msg, args...)
	}
}
