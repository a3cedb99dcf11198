package inspector

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
	// Keep user and system url.*.insteadOf rules out of the results.
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
}

func TestGitQuery_Integration(t *testing.T) {
	requireGit(t)

	repo := newTestRepo(t)
	long := strings.Repeat("seg/", 70) + "end"
	repo.CreateBranch(t, long)

	ctx := context.Background()
	q := NewGitQuery(NewExecCommandRunner(""), repo.Path("docs"))

	root, err := q.TopLevel(ctx)
	if err != nil {
		t.Fatalf("TopLevel() error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(repo.Dir)
	got, _ := filepath.EvalSymlinks(root)
	if got != want {
		t.Errorf("TopLevel() = %q, want %q", root, repo.Dir)
	}

	url, err := q.RemoteURL(ctx, "origin")
	if err != nil {
		t.Fatalf("RemoteURL() error: %v", err)
	}
	if url != "git@github.com:org/repo.git" {
		t.Errorf("RemoteURL() = %q", url)
	}
	if _, err := q.RemoteURL(ctx, "upstream"); err == nil {
		t.Error("RemoteURL(upstream) expected error for missing remote")
	}

	branch, err := q.CurrentBranch(ctx)
	if err != nil {
		t.Fatalf("CurrentBranch() error: %v", err)
	}
	if branch != "main" {
		t.Errorf("CurrentBranch() = %q, want main", branch)
	}

	for name, want := range map[string]bool{
		"main":    true,
		"feature": true,
		"Feature": false,
		"master":  false,
		long:      true,
	} {
		if got := q.BranchExists(ctx, name); got != want {
			t.Errorf("BranchExists(%q) = %v, want %v", name, got, want)
		}
	}

	insp := New(q)
	if !insp.BranchExists(ctx, long) {
		t.Error("Inspector.BranchExists() rejected an existing long branch")
	}
	if base := insp.DefaultBase(ctx); base != "main" {
		t.Errorf("DefaultBase() = %q, want main", base)
	}
}

func TestGitQuery_IntegrationDetachedHead(t *testing.T) {
	requireGit(t)

	repo := newTestRepo(t)
	repo.Detach(t)

	q := NewGitQuery(NewExecCommandRunner(""), repo.Dir)
	if _, err := q.CurrentBranch(context.Background()); err == nil {
		t.Error("CurrentBranch() expected error on detached HEAD")
	}

	_, err := New(q).CurrentBranch(context.Background())
	if !IsUnavailable(err) {
		t.Errorf("expected unavailable error, got %v", err)
	}
}

func TestGitQuery_IntegrationOutsideRepository(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	_, err := New(NewGitQuery(NewExecCommandRunner(""), dir)).FindRepositoryRoot(context.Background())
	if !IsUnavailable(err) {
		t.Errorf("expected unavailable error, got %v", err)
	}
}
