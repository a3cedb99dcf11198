package di

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goliatone/repolink/internal/inspector"
	"github.com/goliatone/repolink/internal/opener"
	"github.com/goliatone/repolink/pkg/config"
)

// Logger defines the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Container exposes resolved dependencies for the CLI orchestration layer.
type Container interface {
	// Core service accessors
	Inspector() opener.Inspector
	Launcher() opener.Launcher
	Opener() *opener.Opener

	// Configuration and infrastructure
	Config() *config.Config
	Logger() Logger
	WorkDir() string

	// Resource management
	Close() error
}

// Option customises container construction using the functional options pattern.
// Options allow overriding default dependencies for testing and customization.
type Option func(*builder) error

// New creates a container with default wiring and applies the provided options.
// It returns an error if required dependencies are missing or if any option fails.
func New(opts ...Option) (Container, error) {
	b := &builder{}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("di: failed to apply option: %w", err)
		}
	}

	return b.build()
}

// builder holds the dependencies being assembled into a container.
type builder struct {
	cfg     *config.Config
	workDir string
	goos    string

	logger    Logger
	logOutput io.Writer

	query    inspector.Query
	launcher opener.Launcher
}

type container struct {
	cfg       *config.Config
	workDir   string
	logger    Logger
	query     inspector.Query
	inspector *inspector.Inspector
	launcher  opener.Launcher
	opener    *opener.Opener
}

func (c *container) Inspector() opener.Inspector { return c.inspector }
func (c *container) Launcher() opener.Launcher   { return c.launcher }
func (c *container) Opener() *opener.Opener      { return c.opener }

func (c *container) Config() *config.Config { return c.cfg }
func (c *container) Logger() Logger         { return c.logger }
func (c *container) WorkDir() string        { return c.workDir }

// Close releases any dependency that implements io.Closer.
func (c *container) Close() error {
	var errs []error

	if closer, ok := c.query.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("query close: %w", err))
		}
	}

	if closer, ok := c.launcher.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("launcher close: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}

// build resolves every dependency that was not injected. Configuration
// comes first since the logger and the inspection backend depend on it.
func (b *builder) build() (Container, error) {
	start := time.Now()

	if b.cfg == nil {
		b.cfg = config.Default()
	}

	if b.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("di: resolve working directory: %w", err)
		}
		b.workDir = wd
	}

	if b.logger == nil {
		out := b.logOutput
		if out == nil {
			out = os.Stderr
		}
		b.logger = provideLoggerWithConfig(b.cfg, out)
	}

	if b.query == nil {
		query, err := provideQuery(b.cfg, b.workDir)
		if err != nil {
			return nil, err
		}
		b.query = query
	}

	if b.launcher == nil {
		b.launcher = provideLauncher(b.cfg, b.goos, b.logger)
	}

	insp := provideInspector(b.cfg, b.query, b.logger)

	c := &container{
		cfg:       b.cfg,
		workDir:   b.workDir,
		logger:    b.logger,
		query:     b.query,
		inspector: insp,
		launcher:  b.launcher,
		opener:    opener.New(insp, b.launcher, b.logger, b.workDir),
	}

	b.logger.Debug("DI container created",
		"duration_ms", time.Since(start).Milliseconds(),
		"git", b.cfg.Git.Implementation,
		"remote", b.cfg.Git.Remote,
		"work_dir", b.workDir,
		"config_file", b.cfg.Source,
	)

	return c, nil
}

// WithConfig injects an explicit configuration object into the container.
// Without it the container uses config.Default().
func WithConfig(cfg *config.Config) Option {
	return func(b *builder) error {
		if cfg == nil {
			return fmt.Errorf("config cannot be nil")
		}
		b.cfg = cfg
		return nil
	}
}

// WithLogger injects a custom logger into the container.
func WithLogger(logger Logger) Option {
	return func(b *builder) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		b.logger = logger
		return nil
	}
}

// WithLogOutput redirects the default logger. Ignored when WithLogger is used.
func WithLogOutput(w io.Writer) Option {
	return func(b *builder) error {
		if w == nil {
			return fmt.Errorf("log output cannot be nil")
		}
		b.logOutput = w
		return nil
	}
}

// WithWorkDir sets the directory requests are resolved against.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(b *builder) error {
		if dir == "" {
			return fmt.Errorf("work dir cannot be empty")
		}
		b.workDir = dir
		return nil
	}
}

// WithQuery injects the repository query backend, bypassing git.implementation.
func WithQuery(q inspector.Query) Option {
	return func(b *builder) error {
		if q == nil {
			return fmt.Errorf("query cannot be nil")
		}
		b.query = q
		return nil
	}
}

// WithLauncher injects the URL launcher.
func WithLauncher(l opener.Launcher) Option {
	return func(b *builder) error {
		if l == nil {
			return fmt.Errorf("launcher cannot be nil")
		}
		b.launcher = l
		return nil
	}
}

// WithGOOS selects the launcher command table entry. Defaults to runtime.GOOS.
func WithGOOS(goos string) Option {
	return func(b *builder) error {
		b.goos = goos
		return nil
	}
}
