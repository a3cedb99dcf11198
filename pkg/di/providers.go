package di

import (
	"fmt"

	"github.com/goliatone/repolink/internal/browser"
	"github.com/goliatone/repolink/internal/inspector"
	"github.com/goliatone/repolink/pkg/config"
)

// provideQuery selects the repository inspection backend.
func provideQuery(cfg *config.Config, workDir string) (inspector.Query, error) {
	switch cfg.Git.Implementation {
	case "", config.GitImplementationNative:
		return inspector.NewGitQuery(inspector.NewExecCommandRunner(cfg.Git.Binary), workDir), nil
	case config.GitImplementationGoGit:
		return inspector.NewGoGitQuery(workDir), nil
	default:
		return nil, fmt.Errorf("di: unknown git implementation %q", cfg.Git.Implementation)
	}
}

// provideInspector wraps the query with the configured remote and base candidates.
func provideInspector(cfg *config.Config, query inspector.Query, logger Logger) *inspector.Inspector {
	return inspector.New(query,
		inspector.WithRemote(cfg.Git.Remote),
		inspector.WithBaseBranches(cfg.Git.BaseBranches),
		inspector.WithLogger(logger),
	)
}

// provideLauncher builds the OS launcher, layering config commands over the
// built-in table.
func provideLauncher(cfg *config.Config, goos string, logger Logger) *browser.Launcher {
	opts := []browser.Option{browser.WithLogger(logger)}

	if len(cfg.Browser.Commands) > 0 {
		commands := make(map[string]browser.Command, len(cfg.Browser.Commands))
		for goos, argv := range cfg.Browser.Commands {
			commands[goos] = browser.Command(argv)
		}
		opts = append(opts, browser.WithCommands(commands))
	}

	if len(cfg.Browser.Command) > 0 {
		logger.Debug("Browser command override", "command", cfg.Browser.Command)
		opts = append(opts, browser.WithCommand(browser.Command(cfg.Browser.Command)))
	}

	return browser.New(goos, opts...)
}
