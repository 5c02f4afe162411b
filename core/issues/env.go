package issues

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvIssueTrackerURL          = "OSDD_ISSUE_TRACKER_URL"
	EnvShortenedIssueTrackerURL = "OSDD_SHORTENED_ISSUE_TRACKER_URL"
	EnvJiraURL                  = "OSDD_JIRA_URL"
	EnvJiraProject              = "OSDD_JIRA_PROJECT"
)

func envFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "osdd", ".env.issue-tracking")
}

// envLookup returns values from the process environment, falling back to
// ~/.config/osdd/.env.issue-tracking for variables that are not set.
func envLookup() func(string) string {
	var fileVars map[string]string
	if p := envFilePath(); p != "" {
		if vars, err := godotenv.Read(p); err == nil {
			fileVars = vars
		} else if !os.IsNotExist(err) {
			slog.Debug("Ignoring unreadable issue tracking env file", "path", p, "error", err)
		}
	}
	return func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(fileVars[key])
	}
}

// FromEnv builds the tracker configuration from the environment.
//
// A Jira URL takes precedence over the generic tracker URL for full references.
// Hashed references use <jira url>/browse/<project>-{0} when both Jira variables
// are set, then the shortened tracker URL, then whatever full template was chosen.
func FromEnv() *TrackerConfig {
	get := envLookup()

	cfg := &TrackerConfig{FullIssueURLTemplate: get(EnvIssueTrackerURL)}
	if jiraURL := get(EnvJiraURL); jiraURL != "" {
		cfg = jiraTracker(jiraURL, get(EnvJiraProject))
	}
	if cfg.ShortenedIssueURLTemplate == "" {
		cfg.ShortenedIssueURLTemplate = get(EnvShortenedIssueTrackerURL)
	}
	if cfg.ShortenedIssueURLTemplate == "" {
		cfg.ShortenedIssueURLTemplate = cfg.FullIssueURLTemplate
	}

	slog.Debug("Issue tracking from environment",
		"full", cfg.FullIssueURLTemplate, "shortened", cfg.ShortenedIssueURLTemplate)
	return cfg
}
