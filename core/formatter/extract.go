package formatter

import (
	"regexp"
	"strings"

	"github.com/opensdd/osdd-reports/core/issues"
)

var (
	// shortIssuePattern matches hashed references: #123, #PROJ-123, #-123.
	shortIssuePattern = regexp.MustCompile(`#([A-Z][A-Z0-9-_]*)?-?\d+`)
	// fullIssuePattern matches project-prefixed references: PROJ-123.
	fullIssuePattern = regexp.MustCompile(`([A-Z][A-Z0-9-_]*)-\d+`)
)

// extractor scans a working copy of the text behind a cursor. Every match is
// cut out of the working copy (first occurrence of the matched text) and the
// cursor stays where the match began, so text left of the cursor is never
// searched again and a cut cannot produce a reference the input did not hold.
type extractor struct {
	workingCopy string
	pos         int
}

func (e *extractor) extract(pattern *regexp.Regexp) []string {
	var found []string
	seen := map[string]bool{}
	for {
		loc := pattern.FindStringIndex(e.workingCopy[e.pos:])
		if loc == nil {
			return found
		}
		start := e.pos + loc[0]
		issue := e.workingCopy[start : e.pos+loc[1]]
		if !seen[issue] {
			seen[issue] = true
			found = append(found, issue)
		}
		e.workingCopy = strings.Replace(e.workingCopy, issue, "", 1)
		// Whether the cut hit this match or an earlier copy of it, what follows
		// the match now begins at start.
		e.pos = start
	}
}

// ShortenedIssuesIn returns the hashed issue references in text, in the order found.
func ShortenedIssuesIn(text string) []string {
	e := &extractor{workingCopy: text}
	return e.extract(shortIssuePattern)
}

// FullIssuesIn returns the project-prefixed issue references in text, in the order found.
func FullIssuesIn(text string) []string {
	e := &extractor{workingCopy: text}
	return e.extract(fullIssuePattern)
}

// IssuesIn returns the full references followed by the shortened ones.
// Both lists are extracted from the original text independently, so #PROJ-1
// shows up as PROJ-1 and as #PROJ-1.
func IssuesIn(text string) []string {
	return append(FullIssuesIn(text), ShortenedIssuesIn(text)...)
}

// ReferencesIn is IssuesIn with each reference tagged by its kind.
func ReferencesIn(text string) []issues.Reference {
	var refs []issues.Reference
	for _, issue := range FullIssuesIn(text) {
		refs = append(refs, issues.Reference{Text: issue, Kind: issues.Full})
	}
	for _, issue := range ShortenedIssuesIn(text) {
		refs = append(refs, issues.Reference{Text: issue, Kind: issues.Shortened})
	}
	return refs
}
