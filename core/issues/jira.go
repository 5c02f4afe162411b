package issues

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/opensdd/osdd-api/clients/go/osdd/recipes"
)

// FromJira derives issue templates for a Jira Cloud site.
// Full references browse https://<organization>.atlassian.net. When the source
// names exactly one project, hashed references are resolved inside it, so #12
// links to <PROJECT>-12.
func FromJira(src *recipes.JiraIssuesSource) (*TrackerConfig, error) {
	if src == nil {
		return nil, fmt.Errorf("jira issues source cannot be nil")
	}

	org := strings.TrimSpace(src.GetOrganization())
	if org == "" {
		return nil, fmt.Errorf("jira organization cannot be empty")
	}

	projects := src.GetProjects()
	slog.Debug("Deriving issue tracking from jira", "organization", org, "projects", projects)

	project := ""
	if len(projects) == 1 {
		project = projects[0]
	}
	return jiraTracker(fmt.Sprintf("https://%s.atlassian.net", org), project), nil
}

// jiraTracker builds the templates for a Jira base URL and an optional project key.
func jiraTracker(baseURL, project string) *TrackerConfig {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	cfg := &TrackerConfig{FullIssueURLTemplate: baseURL + "/browse/{0}"}
	if project = strings.TrimSpace(project); project != "" {
		cfg.ShortenedIssueURLTemplate = baseURL + "/browse/" + project + "-{0}"
	}
	return cfg
}

// FromLinear derives the full issue template for a Linear workspace.
func FromLinear(workspace string) (*TrackerConfig, error) {
	workspace = strings.TrimSpace(workspace)
	if workspace == "" {
		return nil, fmt.Errorf("linear workspace cannot be empty")
	}
	return &TrackerConfig{
		FullIssueURLTemplate: fmt.Sprintf("https://linear.app/%s/issue/{0}", workspace),
	}, nil
}
