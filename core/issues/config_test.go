package issues

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *TrackerConfig
		wantErr string
	}{
		{
			name:    "empty",
			content: "",
			want:    &TrackerConfig{},
		},
		{
			name: "explicit templates",
			content: `
issueTrackerUrl: http://tracker/browse/{0}
shortenedIssueTrackerUrl: http://tracker/browse/PROJ-{0}
`,
			want: &TrackerConfig{
				FullIssueURLTemplate:      "http://tracker/browse/{0}",
				ShortenedIssueURLTemplate: "http://tracker/browse/PROJ-{0}",
			},
		},
		{
			name: "jira block",
			content: `
jira:
  organization: acme
  projects: [PROJ]
`,
			want: &TrackerConfig{
				FullIssueURLTemplate:      "https://acme.atlassian.net/browse/{0}",
				ShortenedIssueURLTemplate: "https://acme.atlassian.net/browse/PROJ-{0}",
			},
		},
		{
			name: "explicit url wins over jira",
			content: `
issueTrackerUrl: http://tracker/browse/{0}
jira:
  organization: acme
  projects: [PROJ]
`,
			want: &TrackerConfig{
				FullIssueURLTemplate:      "http://tracker/browse/{0}",
				ShortenedIssueURLTemplate: "https://acme.atlassian.net/browse/PROJ-{0}",
			},
		},
		{
			name: "linear block",
			content: `
linear:
  workspace: acme
`,
			want: &TrackerConfig{FullIssueURLTemplate: "https://linear.app/acme/issue/{0}"},
		},
		{
			name: "jira and git",
			content: `
jira:
  organization: acme
git:
  fullName: acme/app
  provider: github
`,
			want: &TrackerConfig{
				FullIssueURLTemplate:      "https://acme.atlassian.net/browse/{0}",
				ShortenedIssueURLTemplate: "https://github.com/acme/app/issues/{0}",
			},
		},
		{
			name: "unknown jira field",
			content: `
jira:
  organization: acme
  board: 7
`,
			wantErr: "invalid jira block",
		},
		{
			name: "jira without organization",
			content: `
jira:
  projects: [PROJ]
`,
			wantErr: "jira organization cannot be empty",
		},
		{
			name: "unsupported git provider",
			content: `
git:
  fullName: acme/app
  provider: gitlab
`,
			wantErr: "unsupported git provider",
		},
		{
			name:    "malformed yaml",
			content: "issueTrackerUrl: [",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tt.content))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("json file", func(t *testing.T) {
		t.Parallel()
		p := filepath.Join(t.TempDir(), "issue-tracking.json")
		content := `{"issueTrackerUrl": "http://tracker/browse/{0}", "git": {"fullName": "acme/app", "provider": "bitbucket"}}`
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

		cfg, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, &TrackerConfig{
			FullIssueURLTemplate:      "http://tracker/browse/{0}",
			ShortenedIssueURLTemplate: "https://bitbucket.org/acme/app/issues/{0}",
		}, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read issue tracking config")
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := Load(" ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "issue tracking config path cannot be empty")
	})

	t.Run("invalid content", func(t *testing.T) {
		t.Parallel()
		p := filepath.Join(t.TempDir(), "issue-tracking.yaml")
		require.NoError(t, os.WriteFile(p, []byte("linear:\n  workspace: \"\"\n"), 0o644))

		_, err := Load(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse issue tracking config")
		assert.Contains(t, err.Error(), "linear workspace cannot be empty")
	})
}
