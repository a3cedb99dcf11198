package inspector

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// gitQuery implements Query by running the git binary in a fixed directory.
type gitQuery struct {
	runner CommandRunner
	dir    string
}

// NewGitQuery creates a Query that runs git commands in dir.
func NewGitQuery(runner CommandRunner, dir string) Query {
	if runner == nil {
		runner = NewExecCommandRunner("")
	}
	return &gitQuery{runner: runner, dir: dir}
}

func (q *gitQuery) TopLevel(ctx context.Context) (string, error) {
	out, err := q.runner.Run(ctx, q.dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	out = cleanGitOutput(out)
	if out == "" {
		return "", fmt.Errorf("git rev-parse returned no top-level directory")
	}
	return filepath.FromSlash(out), nil
}

func (q *gitQuery) RemoteURL(ctx context.Context, remote string) (string, error) {
	out, err := q.runner.Run(ctx, q.dir, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	out = cleanGitOutput(out)
	if out == "" {
		return "", fmt.Errorf("remote %s has no URL", remote)
	}
	return out, nil
}

func (q *gitQuery) CurrentBranch(ctx context.Context) (string, error) {
	// symbolic-ref fails on a detached HEAD, which is what we want.
	out, err := q.runner.Run(ctx, q.dir, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	out = cleanGitOutput(out)
	if out == "" {
		return "", fmt.Errorf("HEAD does not point to a branch")
	}
	return out, nil
}

func (q *gitQuery) BranchExists(ctx context.Context, name string) bool {
	_, err := q.runner.Run(ctx, q.dir, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}

// cleanGitOutput trims whitespace from git command output to make comparisons robust.
func cleanGitOutput(output string) string {
	return strings.TrimSpace(output)
}
