package gitutil

import (
	"fmt"
	"strings"
)

// NormalizeRemoteURL turns a configured remote URL into the browsable base
// URL used as prefix for every generated link.
// Handles the formats git accepts for remotes:
// - git@github.com:user/repo.git
// - ssh://git@github.com:22/user/repo.git
// - git://github.com/user/repo.git
// - https://github.com/user/repo.git
// - github.com/user/repo
//
// The result is https://host/path (http:// is kept for http remotes).
// Normalizing an already normalized URL returns it unchanged. Hosts are not
// checked against known providers.
func NormalizeRemoteURL(raw string) string {
	scheme, host, path := splitRemote(raw)
	if host == "" {
		return strings.TrimSpace(raw)
	}
	if path == "" {
		return scheme + "://" + host
	}
	return scheme + "://" + host + "/" + path
}

// ParseRepoURL parses a remote URL into a structured RepoURL.
func ParseRepoURL(raw string) (*RepoURL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("remote URL cannot be empty")
	}

	_, host, path := splitRemote(raw)
	if host == "" || path == "" {
		return nil, fmt.Errorf("invalid remote URL format: %s", raw)
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("remote URL path must contain owner and name: %s", raw)
	}

	return &RepoURL{
		Host:     host,
		Owner:    strings.Join(parts[:len(parts)-1], "/"),
		Name:     parts[len(parts)-1],
		Protocol: detectProtocol(raw),
		Raw:      strings.TrimSpace(raw),
	}, nil
}

// splitRemote breaks a remote URL into web scheme, host and repository path.
// The path has no leading or trailing slash and no .git suffix.
func splitRemote(raw string) (scheme, host, path string) {
	url := strings.TrimSpace(raw)
	url = strings.TrimRight(url, "/")
	url = strings.TrimSuffix(url, ".git")

	scheme = "https"
	switch {
	case strings.HasPrefix(url, "https://"):
		url = strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		scheme = "http"
		url = strings.TrimPrefix(url, "http://")
	case strings.HasPrefix(url, "ssh://"):
		url = strings.TrimPrefix(url, "ssh://")
	case strings.HasPrefix(url, "git+ssh://"):
		url = strings.TrimPrefix(url, "git+ssh://")
	case strings.HasPrefix(url, "git://"):
		url = strings.TrimPrefix(url, "git://")
	case isSCPLike(url):
		// Convert git@github.com:user/repo to github.com/user/repo
		url = strings.Replace(url, ":", "/", 1)
	}

	host, path, _ = strings.Cut(url, "/")

	// Credentials and ports never belong in a browsable URL.
	if at := strings.LastIndex(host, "@"); at >= 0 {
		host = host[at+1:]
	}
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}

	return scheme, host, strings.Trim(path, "/")
}

// isSCPLike reports whether url uses the scp-like syntax [user@]host:path.
func isSCPLike(url string) bool {
	if strings.Contains(url, "://") {
		return false
	}
	colon := strings.Index(url, ":")
	if colon <= 0 {
		return false
	}
	slash := strings.Index(url, "/")
	return slash < 0 || colon < slash
}

func detectProtocol(raw string) Protocol {
	url := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(url, "https://"):
		return ProtocolHTTPS
	case strings.HasPrefix(url, "http://"):
		return ProtocolHTTP
	case strings.HasPrefix(url, "git://"):
		return ProtocolGit
	case strings.HasPrefix(url, "ssh://"), strings.HasPrefix(url, "git+ssh://"), isSCPLike(url):
		return ProtocolSSH
	default:
		return ProtocolHTTPS
	}
}
