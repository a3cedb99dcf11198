// Package testsupport builds throwaway git repositories for tests without
// needing a git binary.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RepoOptions describes the repository NewRepo creates.
type RepoOptions struct {
	// DefaultBranch is checked out after init. Default: main
	DefaultBranch string
	// Remotes maps remote names to their fetch URL.
	Remotes map[string]string
	// Files are committed in the initial commit, keyed by slash path.
	Files map[string]string
	// Branches are created at the initial commit.
	Branches []string
}

// Repo is a repository created by NewRepo.
type Repo struct {
	Dir  string
	Repo *git.Repository
	Head plumbing.Hash
}

// NewRepo initialises a repository in a temporary directory with a single
// commit holding opts.Files.
func NewRepo(t testing.TB, opts RepoOptions) *Repo {
	t.Helper()

	if opts.DefaultBranch == "" {
		opts.DefaultBranch = "main"
	}
	if len(opts.Files) == 0 {
		opts.Files = map[string]string{"README.md": "hello\n"}
	}

	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(opts.DefaultBranch),
		},
	})
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}

	for name, url := range opts.Remotes {
		if _, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}}); err != nil {
			t.Fatalf("create remote %s: %v", name, err)
		}
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	for name, content := range opts.Files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	r := &Repo{Dir: dir, Repo: repo, Head: hash}
	for _, branch := range opts.Branches {
		r.CreateBranch(t, branch)
	}
	return r
}

// CreateBranch points a new local branch at the initial commit.
func (r *Repo) CreateBranch(t testing.TB, name string) {
	t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), r.Head)
	if err := r.Repo.Storer.SetReference(ref); err != nil {
		t.Fatalf("create branch %s: %v", name, err)
	}
}

// Detach points HEAD directly at the initial commit.
func (r *Repo) Detach(t testing.TB) {
	t.Helper()
	if err := r.Repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, r.Head)); err != nil {
		t.Fatalf("detach HEAD: %v", err)
	}
}

// Path joins slash-separated elements onto the repository directory.
func (r *Repo) Path(elem ...string) string {
	parts := append([]string{r.Dir}, elem...)
	return filepath.FromSlash(filepath.Join(parts...))
}
