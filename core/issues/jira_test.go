package issues

import (
	"testing"

	"github.com/opensdd/osdd-api/clients/go/osdd/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jiraSource(org string, projects ...string) *recipes.JiraIssuesSource {
	return recipes.JiraIssuesSource_builder{
		Organization: org,
		Projects:     projects,
	}.Build()
}

func TestFromJira(t *testing.T) {
	tests := []struct {
		name    string
		src     *recipes.JiraIssuesSource
		want    *TrackerConfig
		wantErr string
	}{
		{
			name: "no projects",
			src:  jiraSource("acme"),
			want: &TrackerConfig{FullIssueURLTemplate: "https://acme.atlassian.net/browse/{0}"},
		},
		{
			name: "single project resolves hashed references",
			src:  jiraSource("acme", "PROJ"),
			want: &TrackerConfig{
				FullIssueURLTemplate:      "https://acme.atlassian.net/browse/{0}",
				ShortenedIssueURLTemplate: "https://acme.atlassian.net/browse/PROJ-{0}",
			},
		},
		{
			name: "several projects",
			src:  jiraSource("acme", "PROJ", "OPS"),
			want: &TrackerConfig{FullIssueURLTemplate: "https://acme.atlassian.net/browse/{0}"},
		},
		{
			name:    "nil source",
			wantErr: "jira issues source cannot be nil",
		},
		{
			name:    "empty organization",
			src:     jiraSource("  "),
			wantErr: "jira organization cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := FromJira(tt.src)

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

func TestFromLinear(t *testing.T) {
	t.Parallel()
	cfg, err := FromLinear(" acme ")
	require.NoError(t, err)
	assert.Equal(t, &TrackerConfig{FullIssueURLTemplate: "https://linear.app/acme/issue/{0}"}, cfg)

	_, err = FromLinear("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linear workspace cannot be empty")
}
