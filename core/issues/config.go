package issues

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/opensdd/osdd-api/clients/go/osdd"
	"github.com/opensdd/osdd-api/clients/go/osdd/recipes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout read by Load. The jira and git blocks use the
// JSON names of recipes.JiraIssuesSource and osdd.GitRepository.
type fileConfig struct {
	IssueTrackerURL          string         `yaml:"issueTrackerUrl"`
	ShortenedIssueTrackerURL string         `yaml:"shortenedIssueTrackerUrl"`
	Jira                     map[string]any `yaml:"jira"`
	Linear                   *linearConfig  `yaml:"linear"`
	Git                      map[string]any `yaml:"git"`
}

type linearConfig struct {
	Workspace string `yaml:"workspace"`
}

// Load reads an issue tracking configuration file. YAML and JSON are both accepted.
//
// Explicit issueTrackerUrl / shortenedIssueTrackerUrl entries win; remaining
// templates are filled from the jira, linear and git blocks, in that order.
func Load(path string) (*TrackerConfig, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("issue tracking config path cannot be empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read issue tracking config %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse issue tracking config %s: %w", path, err)
	}
	slog.Debug("Loaded issue tracking config", "path", path,
		"full", cfg.FullIssueURLTemplate, "shortened", cfg.ShortenedIssueURLTemplate)
	return cfg, nil
}

// Parse decodes the content of an issue tracking configuration file.
func Parse(content []byte) (*TrackerConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(content, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := &TrackerConfig{
		FullIssueURLTemplate:      strings.TrimSpace(fc.IssueTrackerURL),
		ShortenedIssueURLTemplate: strings.TrimSpace(fc.ShortenedIssueTrackerURL),
	}

	if fc.Jira != nil {
		src := &recipes.JiraIssuesSource{}
		if err := unmarshalBlock(fc.Jira, src); err != nil {
			return nil, fmt.Errorf("invalid jira block: %w", err)
		}
		jira, err := FromJira(src)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(jira)
	}

	if fc.Linear != nil {
		linear, err := FromLinear(fc.Linear.Workspace)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(linear)
	}

	if fc.Git != nil {
		repo := &osdd.GitRepository{}
		if err := unmarshalBlock(fc.Git, repo); err != nil {
			return nil, fmt.Errorf("invalid git block: %w", err)
		}
		git, err := FromGitRepository(repo)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(git)
	}

	return cfg, nil
}

// unmarshalBlock converts a decoded YAML mapping to JSON, then into msg.
func unmarshalBlock(block map[string]any, msg proto.Message) error {
	b, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	return protojson.Unmarshal(b, msg)
}
