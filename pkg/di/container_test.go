package di_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/repolink/internal/inspector"
	"github.com/goliatone/repolink/internal/opener"
	"github.com/goliatone/repolink/pkg/config"
	"github.com/goliatone/repolink/pkg/di"
)

type stubQuery struct {
	root     string
	remote   string
	branch   string
	branches map[string]bool
}

func (q *stubQuery) TopLevel(context.Context) (string, error) {
	if q.root == "" {
		return "", errors.New("not a git repository")
	}
	return q.root, nil
}

func (q *stubQuery) RemoteURL(_ context.Context, remote string) (string, error) {
	if remote != "origin" && remote != "upstream" {
		return "", errors.New("no such remote")
	}
	return q.remote, nil
}

func (q *stubQuery) CurrentBranch(context.Context) (string, error) {
	return q.branch, nil
}

func (q *stubQuery) BranchExists(_ context.Context, name string) bool {
	return q.branches[name]
}

type recordingLauncher struct {
	urls []string
}

func (l *recordingLauncher) Open(_ context.Context, url string) error {
	l.urls = append(l.urls, url)
	return nil
}

func TestNew_Defaults(t *testing.T) {
	var logs bytes.Buffer
	c, err := di.New(di.WithWorkDir(t.TempDir()), di.WithLogOutput(&logs))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer c.Close()

	if c.Config() == nil {
		t.Fatal("expected default config")
	}
	if got := c.Config().Git.Implementation; got != config.GitImplementationNative {
		t.Errorf("implementation = %q, want native", got)
	}
	if c.Logger() == nil || c.Inspector() == nil || c.Launcher() == nil || c.Opener() == nil {
		t.Fatal("expected all services to be wired")
	}
}

func TestNew_WiresOpener(t *testing.T) {
	root := t.TempDir()
	query := &stubQuery{
		root:     root,
		remote:   "git@github.com:org/repo.git",
		branch:   "feature",
		branches: map[string]bool{"feature": true, "master": true},
	}
	launcher := &recordingLauncher{}

	cfg := config.Default()
	c, err := di.New(
		di.WithConfig(cfg),
		di.WithQuery(query),
		di.WithLauncher(launcher),
		di.WithWorkDir(root),
		di.WithLogOutput(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	res, err := c.Opener().Run(context.Background(), opener.Request{Compare: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := "https://github.com/org/repo/compare/master...feature"
	if res.URL != want {
		t.Errorf("URL = %q, want %q", res.URL, want)
	}
	if len(launcher.urls) != 1 || launcher.urls[0] != want {
		t.Errorf("launched %v, want [%s]", launcher.urls, want)
	}
}

func TestNew_RemoteFromConfig(t *testing.T) {
	query := &stubQuery{root: "/repo", remote: "https://gitlab.com/group/sub/proj.git"}

	cfg := config.Default()
	cfg.Git.Remote = "upstream"
	c, err := di.New(di.WithConfig(cfg), di.WithQuery(query), di.WithWorkDir("/repo"), di.WithLogOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got, err := c.Inspector().RemoteURL(context.Background())
	if err != nil {
		t.Fatalf("RemoteURL() error: %v", err)
	}
	if got != "https://gitlab.com/group/sub/proj" {
		t.Errorf("RemoteURL() = %q", got)
	}
}

func TestNew_UnavailableRepository(t *testing.T) {
	c, err := di.New(di.WithQuery(&stubQuery{}), di.WithWorkDir("/tmp"), di.WithLogOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	_, err = c.Opener().Run(context.Background(), opener.Request{PrintOnly: true})
	if !errors.Is(err, inspector.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNew_OptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  di.Option
	}{
		{"nil config", di.WithConfig(nil)},
		{"nil logger", di.WithLogger(nil)},
		{"nil query", di.WithQuery(nil)},
		{"nil launcher", di.WithLauncher(nil)},
		{"empty work dir", di.WithWorkDir("")},
		{"nil log output", di.WithLogOutput(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := di.New(tt.opt)
			if err == nil {
				t.Fatal("expected option error")
			}
			if !strings.Contains(err.Error(), "failed to apply option") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
