package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/repolink/pkg/di"
)

// Exit codes. Missing repository context is a degraded no-op and exits
// ExitSuccess; only an explicitly requested branch that does not exist
// fails with ExitBranchNotFound.
const (
	ExitSuccess        = 0 // Successful execution, or nothing to open
	ExitBranchNotFound = 1 // --branch names a branch that does not exist locally
	ExitUsageError     = 2 // Invalid flags or arguments
	ExitConfigError    = 3 // Invalid configuration file, environment or flags
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. opts are passed
// to the dependency container, after the configuration.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...di.Option) int {
	cmd := newRootCommand(opts...)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return reportError(stderr, err)
	}
	return ExitSuccess
}

// reportError prints err and maps it to an exit code.
func reportError(stderr io.Writer, err error) int {
	if cliErr, ok := err.(*CLIError); ok {
		fmt.Fprintf(stderr, "repolink: %s\n", cliErr.Message)
		if cliErr.Cause != nil {
			fmt.Fprintf(stderr, "  Cause: %v\n", cliErr.Cause)
		}
		return cliErr.ExitCode()
	}

	// Cobra argument and command errors
	fmt.Fprintf(stderr, "repolink: %v\n", err)
	return ExitUsageError
}
