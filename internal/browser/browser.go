// Package browser opens URLs with the host operating system's native opener.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedOS is returned when no launch command is known for the OS.
var ErrUnsupportedOS = errors.New("browser: unsupported OS")

// URLPlaceholder marks where the URL goes in a Command.
const URLPlaceholder = "%s"

// Command is an argv template. Arguments containing URLPlaceholder receive
// the URL; a Command without one gets the URL appended.
type Command []string

// DefaultCommands maps GOOS values to their URL opener.
var DefaultCommands = map[string]Command{
	"darwin":  {"open"},
	"linux":   {"xdg-open"},
	"freebsd": {"xdg-open"},
	"openbsd": {"xdg-open"},
	"netbsd":  {"xdg-open"},
	"windows": {"cmd", "/c", "start", ""},
}

// Starter starts a process without waiting for it to finish.
type Starter interface {
	Start(ctx context.Context, name string, args ...string) error
}

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, args ...any)
}

// LaunchError wraps a failure to start the opener command.
type LaunchError struct {
	OS      string
	Command []string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("browser: launching %s on %s failed: %v", strings.Join(e.Command, " "), e.OS, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launcher opens URLs using a per-OS command table.
type Launcher struct {
	goos     string
	commands map[string]Command
	override Command
	starter  Starter
	logger   Logger
}

// Option customises a Launcher.
type Option func(*Launcher)

// WithCommands adds or replaces entries in the command table.
func WithCommands(commands map[string]Command) Option {
	return func(l *Launcher) {
		for goos, cmd := range commands {
			if len(cmd) == 0 {
				delete(l.commands, goos)
				continue
			}
			l.commands[goos] = append(Command(nil), cmd...)
		}
	}
}

// WithCommand uses cmd on every OS, ignoring the table.
func WithCommand(cmd Command) Option {
	return func(l *Launcher) {
		if len(cmd) > 0 {
			l.override = append(Command(nil), cmd...)
		}
	}
}

// WithStarter replaces the process starter, mostly for tests.
func WithStarter(s Starter) Option {
	return func(l *Launcher) {
		if s != nil {
			l.starter = s
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// New creates a Launcher for the given GOOS value. An empty goos means runtime.GOOS.
func New(goos string, opts ...Option) *Launcher {
	if goos == "" {
		goos = runtime.GOOS
	}
	l := &Launcher{
		goos:     goos,
		commands: make(map[string]Command, len(DefaultCommands)),
		starter:  execStarter{},
	}
	for k, v := range DefaultCommands {
		l.commands[k] = v
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CommandFor returns the full argv that would open url, or ErrUnsupportedOS.
func (l *Launcher) CommandFor(url string) ([]string, error) {
	prefix := l.override
	if len(prefix) == 0 {
		var ok bool
		prefix, ok = l.commands[l.goos]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, l.goos)
		}
	}
	return expand(prefix, url), nil
}

func expand(cmd Command, url string) []string {
	argv := make([]string, 0, len(cmd)+1)
	placed := false
	for _, arg := range cmd {
		if strings.Contains(arg, URLPlaceholder) {
			arg = strings.ReplaceAll(arg, URLPlaceholder, url)
			placed = true
		}
		argv = append(argv, arg)
	}
	if !placed {
		argv = append(argv, url)
	}
	return argv
}

// Open starts the OS opener for url and returns once it has been spawned.
func (l *Launcher) Open(ctx context.Context, url string) error {
	argv, err := l.CommandFor(url)
	if err != nil {
		return err
	}

	if l.logger != nil {
		l.logger.Debug("launching browser", "os", l.goos, "command", argv)
	}

	if err := l.starter.Start(ctx, argv[0], argv[1:]...); err != nil {
		return &LaunchError{OS: l.goos, Command: argv, Err: err}
	}
	return nil
}

// execStarter starts real processes.
type execStarter struct{}

func (execStarter) Start(ctx context.Context, name string, args ...string) error {
	// Not bound to ctx: the opener must outlive this process.
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }() // reap zombie process
	return nil
}
