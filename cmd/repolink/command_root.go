package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/repolink/internal/inspector"
	"github.com/goliatone/repolink/internal/opener"
	"github.com/goliatone/repolink/internal/weburl"
	"github.com/goliatone/repolink/pkg/config"
	"github.com/goliatone/repolink/pkg/di"
)

// Command flag names.
const (
	flagBranch  = "branch"
	flagLine    = "line"
	flagCompare = "compare"
	flagBase    = "base"
	flagHead    = "head"
	flagPrint   = "print"
)

type rootOptions struct {
	branch    string
	line      int
	compare   bool
	base      string
	head      string
	printOnly bool
}

// newRootCommand creates the repolink command. diOpts are appended to the
// container options built from configuration.
func newRootCommand(diOpts ...di.Option) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "repolink [FILE]",
		Short: "Open the web page for a file, directory or branch comparison of the current repository",
		Long: `repolink opens the hosting platform page for the current git repository.

With no arguments it opens the current directory on the current branch.
With FILE it opens that file, optionally at --line. With --compare it opens
the comparison of --head (default: current branch) against --base (default:
main, or master when main does not exist).

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (REPOLINK_*)
  3. Configuration file (~/.config/repolink/config.yaml or config.toml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0  - Success, or not inside a repository with a usable remote
  1  - The branch given with --branch does not exist locally
  2  - Invalid flags or arguments
  3  - Configuration error

Flags and arguments are checked before --branch: an invalid value such as
--line 0 exits 2 even when the branch is also missing.

Examples:
  repolink
  repolink src/main.go --line 42
  repolink README.md --branch develop
  repolink --compare --base release --print`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, args, opts, diOpts)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError("invalid flag usage", err)
	})

	cmd.Args = func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
			return newUsageError("invalid arguments", err)
		}
		return nil
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.branch, flagBranch, "b", "", "Branch to link to (must exist locally)")
	flags.IntVarP(&opts.line, flagLine, "l", 0, "Line number to highlight in FILE")
	flags.BoolVar(&opts.compare, flagCompare, false, "Open a branch comparison instead of a file")
	flags.StringVar(&opts.base, flagBase, "", "Base branch for --compare (default: main or master)")
	flags.StringVar(&opts.head, flagHead, "", "Head branch for --compare (default: current branch)")
	flags.BoolVarP(&opts.printOnly, flagPrint, "p", false, "Print the URL instead of opening a browser")

	config.AddFlags(cmd)

	return cmd
}

func runOpen(cmd *cobra.Command, args []string, opts *rootOptions, diOpts []di.Option) error {
	if cmd.Flags().Changed(flagLine) && opts.line <= 0 {
		return newUsageError(fmt.Sprintf("--line must be a positive integer, got %d", opts.line), nil)
	}

	cfg, err := config.NewBuilder().
		FromFile(config.ConfigFileFlag(cmd)).
		FromEnv().
		FromFlags(cmd).
		Build()
	if err != nil {
		return newConfigError("failed to build configuration", err)
	}

	container, err := di.New(append([]di.Option{di.WithConfig(cfg)}, diOpts...)...)
	if err != nil {
		return newConfigError("failed to initialize dependencies", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			container.Logger().Warn("Container cleanup errors", "error", err)
		}
	}()

	req := opener.Request{
		Branch:    opts.branch,
		BranchSet: cmd.Flags().Changed(flagBranch),
		Line:      opts.line,
		Compare:   opts.compare,
		Base:      opts.base,
		Head:      opts.head,
		PrintOnly: opts.printOnly,
	}
	if len(args) > 0 {
		req.File = args[0]
	}

	result, err := container.Opener().Run(cmd.Context(), req)
	switch {
	case err == nil:
	case opener.IsBranchNotFound(err):
		return newBranchNotFoundError(err)
	case opener.IsInvalidRequest(err):
		return newUsageError("invalid request", err)
	default:
		reportUnavailable(cmd, err)
		return nil
	}

	if req.PrintOnly {
		fmt.Fprintln(cmd.OutOrStdout(), result.URL)
		return nil
	}

	if result.LaunchErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "repolink: could not open browser: %v\n", result.LaunchErr)
		fmt.Fprintln(cmd.OutOrStdout(), result.URL)
	}
	return nil
}

// reportUnavailable prints a diagnostic for a request that could not be
// resolved. These are not failures: the exit status stays zero.
func reportUnavailable(cmd *cobra.Command, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, weburl.ErrOutsideRepository):
		msg = "path is outside the repository"
	case inspector.IsUnavailable(err):
		var unavailable *inspector.UnavailableError
		if errors.As(err, &unavailable) {
			msg = unavailable.What + " is unavailable"
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "repolink: %s\n", msg)
}
