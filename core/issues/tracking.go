package issues

// IssueTracking supplies the URL templates used to turn issue references into links.
// Each template holds a single {0} placeholder; an empty string means the
// corresponding kind of reference is left unlinked.
type IssueTracking interface {
	// IssueTrackerURL returns the template for full references such as PROJ-123.
	IssueTrackerURL() string
	// ShortenedIssueTrackerURL returns the template for hashed references such as #123.
	ShortenedIssueTrackerURL() string
}

// TrackerConfig is a static IssueTracking. A nil *TrackerConfig configures nothing.
//
// An empty template is treated as absent: that kind of reference is left
// unlinked and Merge fills it from the next source. There is no way to set a
// template that deliberately renders to the empty string.
type TrackerConfig struct {
	FullIssueURLTemplate      string
	ShortenedIssueURLTemplate string
}

// IssueTrackerURL returns FullIssueURLTemplate, or "" for a nil config.
func (c *TrackerConfig) IssueTrackerURL() string {
	if c == nil {
		return ""
	}
	return c.FullIssueURLTemplate
}

// ShortenedIssueTrackerURL returns ShortenedIssueURLTemplate, or "" for a nil config.
func (c *TrackerConfig) ShortenedIssueTrackerURL() string {
	if c == nil {
		return ""
	}
	return c.ShortenedIssueURLTemplate
}

// IsEmpty reports whether neither template is set.
func (c *TrackerConfig) IsEmpty() bool {
	return c.IssueTrackerURL() == "" && c.ShortenedIssueTrackerURL() == ""
}

// Merge returns a copy of c whose empty templates are filled from other.
// Templates already set on c always win.
func (c *TrackerConfig) Merge(other IssueTracking) *TrackerConfig {
	merged := &TrackerConfig{}
	if c != nil {
		*merged = *c
	}
	if other == nil {
		return merged
	}
	if merged.FullIssueURLTemplate == "" {
		merged.FullIssueURLTemplate = other.IssueTrackerURL()
	}
	if merged.ShortenedIssueURLTemplate == "" {
		merged.ShortenedIssueURLTemplate = other.ShortenedIssueTrackerURL()
	}
	return merged
}
