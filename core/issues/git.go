package issues

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/opensdd/osdd-api/clients/go/osdd"
)

// FromGitRepository derives the shortened issue template for a hosted repository,
// so that references such as #42 point at the repository's issue list.
// Provider maps to the hosting service; an empty provider means GitHub.
func FromGitRepository(repo *osdd.GitRepository) (*TrackerConfig, error) {
	if repo == nil {
		return nil, fmt.Errorf("git repository cannot be nil")
	}
	fullName := strings.Trim(strings.TrimSpace(repo.GetFullName()), "/")
	if fullName == "" {
		return nil, fmt.Errorf("git repository full name cannot be empty")
	}

	provider := strings.ToLower(strings.TrimSpace(repo.GetProvider()))

	var host string
	switch provider {
	case "", "github":
		host = "github.com"
	case "bitbucket":
		host = "bitbucket.org"
	default:
		return nil, fmt.Errorf("unsupported git provider: %s", provider)
	}

	slog.Debug("Deriving issue tracking from git repository", "fullName", fullName, "host", host)
	return &TrackerConfig{
		ShortenedIssueURLTemplate: fmt.Sprintf("https://%s/%s/issues/{0}", host, fullName),
	}, nil
}
