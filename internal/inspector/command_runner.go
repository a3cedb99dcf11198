package inspector

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// execCommandRunner implements CommandRunner using os/exec.
type execCommandRunner struct {
	binary string
}

// NewExecCommandRunner creates a CommandRunner that shells out to the given
// git binary. An empty binary means "git" from PATH.
func NewExecCommandRunner(binary string) CommandRunner {
	if strings.TrimSpace(binary) == "" {
		binary = "git"
	}
	return &execCommandRunner{binary: binary}
}

// Run executes a git command in the specified directory and returns its
// trimmed stdout.
func (r *execCommandRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := strings.TrimSpace(stdout.String())

	if err != nil {
		return result, &GitError{
			Operation: strings.Join(args, " "),
			Args:      args,
			Dir:       dir,
			Stderr:    stderr.String(),
			Err:       err,
		}
	}

	return result, nil
}
