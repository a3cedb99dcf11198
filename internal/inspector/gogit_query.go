package inspector

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// goGitQuery implements Query by reading the repository in-process with go-git.
type goGitQuery struct {
	dir string
}

// NewGoGitQuery creates a Query backed by go-git. The repository is located
// by walking up from dir, like the git binary does.
func NewGoGitQuery(dir string) Query {
	return &goGitQuery{dir: dir}
}

func (q *goGitQuery) open() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(q.dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open repository from %s: %w", q.dir, err)
	}
	return repo, nil
}

func (q *goGitQuery) TopLevel(ctx context.Context) (string, error) {
	repo, err := q.open()
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("resolve worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// RemoteURL returns the first configured URL. Unlike git remote get-url,
// url.<base>.insteadOf rules from global or system config are not applied.
func (q *goGitQuery) RemoteURL(ctx context.Context, remote string) (string, error) {
	repo, err := q.open()
	if err != nil {
		return "", err
	}
	r, err := repo.Remote(remote)
	if err != nil {
		return "", fmt.Errorf("remote %s: %w", remote, err)
	}
	urls := r.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", fmt.Errorf("remote %s has no URL", remote)
	}
	return urls[0], nil
}

func (q *goGitQuery) CurrentBranch(ctx context.Context) (string, error) {
	repo, err := q.open()
	if err != nil {
		return "", err
	}
	// Read HEAD without resolving so unborn branches still report a name.
	head, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", errors.New("HEAD does not point to a branch")
	}
	return head.Target().Short(), nil
}

func (q *goGitQuery) BranchExists(ctx context.Context, name string) bool {
	repo, err := q.open()
	if err != nil {
		return false
	}
	_, err = repo.Reference(plumbing.NewBranchReferenceName(name), false)
	return err == nil
}
