// Package formatter formats text for HTML reports. In particular it turns issue
// references such as PROJ-123 and #123 into links to the configured issue tracker.
package formatter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/opensdd/osdd-reports/core/issues"
)

const issueLinkFormat = `<a href="%s">%s</a>`

// Formatter inserts issue tracker links. It keeps no state besides its
// configuration and may be shared between goroutines.
type Formatter struct {
	tracking issues.IssueTracking
}

// New returns a Formatter using tracking for link targets. A nil tracking
// yields a Formatter that leaves text untouched.
func New(tracking issues.IssueTracking) *Formatter {
	return &Formatter{tracking: tracking}
}

// AddLinks replaces issue references in value with HTML anchors.
//
// Full references are linked first. Hashed references are then looked up in the
// already rewritten text, so the outcome depends on that order when both
// templates are configured. Every literal occurrence of a found reference is
// replaced, and running AddLinks again on its own output may nest anchors.
func (f *Formatter) AddLinks(value string) string {
	if f == nil || f.tracking == nil {
		return value
	}
	formatted := value
	if tpl := f.tracking.IssueTrackerURL(); tpl != "" {
		formatted = insertFullIssueTrackingURLs(formatted, tpl)
	}
	if tpl := f.tracking.ShortenedIssueTrackerURL(); tpl != "" {
		formatted = insertShortenedIssueTrackingURLs(formatted, tpl)
	}
	return formatted
}

func insertFullIssueTrackingURLs(value, urlTemplate string) string {
	formatted := value
	found := FullIssuesIn(value)
	for _, issue := range found {
		formatted = linkIssue(formatted, issues.Reference{Text: issue, Kind: issues.Full}, urlTemplate)
	}
	if len(found) > 0 {
		slog.Debug("Linked full issue references", "count", len(found))
	}
	return formatted
}

func insertShortenedIssueTrackingURLs(value, urlTemplate string) string {
	formatted := value
	found := ShortenedIssuesIn(value)
	for _, issue := range found {
		formatted = linkIssue(formatted, issues.Reference{Text: issue, Kind: issues.Shortened}, urlTemplate)
	}
	if len(found) > 0 {
		slog.Debug("Linked shortened issue references", "count", len(found))
	}
	return formatted
}

// linkIssue rewrites every occurrence of ref.Text in value as an anchor.
func linkIssue(value string, ref issues.Reference, urlTemplate string) string {
	issueURL := render(urlTemplate, ref.Key())
	return strings.ReplaceAll(value, ref.Text, fmt.Sprintf(issueLinkFormat, issueURL, ref.Text))
}
