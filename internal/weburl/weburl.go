// Package weburl composes hosting-platform links from repository facts.
package weburl

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrOutsideRepository is returned when a path does not live under the repository root.
var ErrOutsideRepository = errors.New("weburl: path is outside the repository")

// FileURL returns {base}/blob/{branch}/{relPath}, with #L{line} appended
// when line is positive. Path segments are used as given, without escaping.
func FileURL(base, branch, relPath string, line int) string {
	url := strings.TrimRight(base, "/") + "/blob/" + branch + "/" + relPath
	if line > 0 {
		url += "#L" + strconv.Itoa(line)
	}
	return url
}

// CompareURL returns {base}/compare/{baseBranch}...{head}. The head holds
// the changes being reviewed against baseBranch.
func CompareURL(base, head, baseBranch string) string {
	return strings.TrimRight(base, "/") + "/compare/" + baseBranch + "..." + head
}

// RelativePath resolves target against cwd (an empty target means cwd
// itself) and returns it relative to root with forward slashes. The root
// maps to "".
func RelativePath(root, cwd, target string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("weburl: repository root is empty")
	}

	path := target
	if path == "" {
		path = cwd
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	rel, err := filepath.Rel(resolve(root), resolve(path))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOutsideRepository, target, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRepository, path)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

// resolve cleans path and follows symlinks so a repository reached through
// a link still relativizes. Paths that do not exist are resolved as far as
// their deepest existing ancestor.
func resolve(path string) string {
	path = filepath.Clean(path)
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}

	dir, base := filepath.Split(path)
	dir = filepath.Clean(dir)
	if dir == path || base == "" {
		return path
	}
	return filepath.Join(resolve(dir), base)
}
