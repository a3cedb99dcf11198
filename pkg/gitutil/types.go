package gitutil

// Protocol represents the transport a remote URL was written with.
type Protocol string

const (
	// ProtocolHTTPS represents HTTPS remotes
	ProtocolHTTPS Protocol = "https"
	// ProtocolHTTP represents plain HTTP remotes
	ProtocolHTTP Protocol = "http"
	// ProtocolSSH represents scp-like and ssh:// remotes
	ProtocolSSH Protocol = "ssh"
	// ProtocolGit represents git:// remotes
	ProtocolGit Protocol = "git"
)

// RepoURL represents a parsed remote URL.
type RepoURL struct {
	// Host is the hosting provider (e.g., github.com, gitlab.com)
	Host string

	// Owner is the repository owner or organization. Nested groups are kept
	// joined with "/".
	Owner string

	// Name is the repository name
	Name string

	// Protocol is the transport used in the original URL
	Protocol Protocol

	// Raw is the remote URL exactly as configured
	Raw string
}
