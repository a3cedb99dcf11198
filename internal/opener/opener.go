// Package opener turns a parsed command-line request into a hosting URL and
// hands it to the browser launcher.
package opener

import (
	"context"
	"fmt"

	"github.com/goliatone/repolink/internal/weburl"
)

// Mode identifies which kind of link a request produced.
type Mode string

const (
	// ModeFile links to a file or directory given on the command line.
	ModeFile Mode = "file"
	// ModeDirectory links to the working directory (no file argument).
	ModeDirectory Mode = "directory"
	// ModeCompare links to a branch comparison.
	ModeCompare Mode = "compare"
)

// Request is the user's intent as parsed from the command line.
type Request struct {
	File   string
	Branch string
	// BranchSet records that --branch was given explicitly.
	BranchSet bool
	Line      int
	Compare   bool
	Base      string
	Head      string
	// PrintOnly skips the browser launch.
	PrintOnly bool
}

// Result describes the produced link.
type Result struct {
	Mode Mode
	URL  string
	// Launched is true when the opener command was started.
	Launched bool
	// LaunchErr holds a non-fatal browser launch failure.
	LaunchErr error
}

// Inspector is the repository knowledge the opener needs.
type Inspector interface {
	FindRepositoryRoot(ctx context.Context) (string, error)
	RemoteURL(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, error)
	BranchExists(ctx context.Context, name string) bool
	DefaultBase(ctx context.Context) string
}

// Launcher opens URLs.
type Launcher interface {
	Open(ctx context.Context, url string) error
}

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Opener wires the inspector, URL builder and launcher together.
type Opener struct {
	inspector Inspector
	launcher  Launcher
	logger    Logger
	workDir   string
}

// New creates an Opener. workDir is the directory requests are resolved
// against and the target of the no-argument mode.
func New(inspector Inspector, launcher Launcher, logger Logger, workDir string) *Opener {
	return &Opener{
		inspector: inspector,
		launcher:  launcher,
		logger:    logger,
		workDir:   workDir,
	}
}

// Run validates the request, builds the link and launches it.
//
// An explicitly requested branch that does not exist yields a
// *BranchNotFoundError. Missing repository context yields an error matching
// inspector.ErrUnavailable or weburl.ErrOutsideRepository. Browser failures
// are reported on Result.LaunchErr only.
func (o *Opener) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Line < 0 {
		return nil, &InvalidRequestError{Field: "line", Message: fmt.Sprintf("must be a positive integer, got %d", req.Line)}
	}

	if req.BranchSet && !o.inspector.BranchExists(ctx, req.Branch) {
		return nil, &BranchNotFoundError{Branch: req.Branch}
	}

	result, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.PrintOnly {
		return result, nil
	}

	o.info("opening URL", "mode", result.Mode, "url", result.URL)
	if err := o.launcher.Open(ctx, result.URL); err != nil {
		o.warn("could not open browser", "url", result.URL, "error", err)
		result.LaunchErr = err
		return result, nil
	}
	result.Launched = true
	return result, nil
}

// Resolve builds the link for req without launching anything.
func (o *Opener) Resolve(ctx context.Context, req Request) (*Result, error) {
	root, err := o.inspector.FindRepositoryRoot(ctx)
	if err != nil {
		return nil, err
	}

	base, err := o.inspector.RemoteURL(ctx)
	if err != nil {
		return nil, err
	}

	o.debug("resolved repository", "root", root, "remote", base, "work_dir", o.workDir)

	if req.Compare {
		return o.compare(ctx, req, base)
	}
	return o.file(ctx, req, root, base)
}

func (o *Opener) compare(ctx context.Context, req Request, remoteBase string) (*Result, error) {
	head := req.Head
	if head == "" {
		current, err := o.inspector.CurrentBranch(ctx)
		if err != nil {
			return nil, err
		}
		head = current
	}

	baseBranch := req.Base
	if baseBranch == "" {
		baseBranch = o.inspector.DefaultBase(ctx)
	}

	o.debug("compare", "head", head, "base", baseBranch)
	return &Result{
		Mode: ModeCompare,
		URL:  weburl.CompareURL(remoteBase, head, baseBranch),
	}, nil
}

func (o *Opener) file(ctx context.Context, req Request, root, remoteBase string) (*Result, error) {
	branch := req.Branch
	if branch == "" {
		current, err := o.inspector.CurrentBranch(ctx)
		if err != nil {
			return nil, err
		}
		branch = current
	}

	rel, err := weburl.RelativePath(root, o.workDir, req.File)
	if err != nil {
		return nil, err
	}

	mode := ModeFile
	if req.File == "" {
		mode = ModeDirectory
	}

	o.debug("file", "branch", branch, "path", rel, "line", req.Line)
	return &Result{
		Mode: mode,
		URL:  weburl.FileURL(remoteBase, branch, rel, req.Line),
	}, nil
}

func (o *Opener) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

func (o *Opener) info(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Info(msg, args...)
	}
}

func (o *Opener) warn(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Warn(msg, args...)
	}
}
