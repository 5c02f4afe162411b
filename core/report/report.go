// Package report post-processes generated HTML reports: it links issue
// references, builds an index of the referenced issues and writes the result.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/opensdd/osdd-api/clients/go/osdd"
	"github.com/opensdd/osdd-reports/core/formatter"
	"github.com/opensdd/osdd-reports/core/issues"
)

// IssueIndexPath is where IssueIndex places its page.
const IssueIndexPath = "issues.html"

// Linker rewrites issue references in the HTML files of a report.
type Linker struct {
	Formatter *formatter.Formatter
}

// Link returns a copy of res where the content of every .html/.htm file went
// through Formatter.AddLinks. Other entries are carried over as they are.
func (l *Linker) Link(res *osdd.MaterializedResult) (*osdd.MaterializedResult, error) {
	if res == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}

	var entries []*osdd.MaterializedResult_Entry
	for _, e := range res.GetEntries() {
		if e == nil {
			continue
		}
		if !isHTML(e) {
			entries = append(entries, e)
			continue
		}
		f := e.GetFile()
		entries = append(entries, osdd.MaterializedResult_Entry_builder{
			File: osdd.FullFileContent_builder{
				Path:    f.GetPath(),
				Content: l.Formatter.AddLinks(f.GetContent()),
			}.Build(),
		}.Build())
	}

	return osdd.MaterializedResult_builder{Entries: entries}.Build(), nil
}

const issueIndexTemplate = `<html>
<head><title>Issues</title></head>
<body>
<h1>Issues</h1>
<ul>
{{range .}}<li class="{{.Kind}}">{{.Link}}</li>
{{end}}</ul>
</body>
</html>
`

var issueIndex = template.Must(template.New("issueIndex").Parse(issueIndexTemplate))

// IssueIndex renders a page listing every issue referenced by the HTML files
// of res, in order of first appearance, each linked through f.
// When the report references no issues there is no page to publish and it
// returns a nil entry with a nil error.
func IssueIndex(res *osdd.MaterializedResult, f *formatter.Formatter) (*osdd.MaterializedResult_Entry, error) {
	if res == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}

	type issueVM struct {
		Kind string
		Link template.HTML
	}

	var (
		vm   []issueVM
		seen = map[string]bool{}
	)
	for _, e := range res.GetEntries() {
		if !isHTML(e) {
			continue
		}
		for _, ref := range formatter.ReferencesIn(e.GetFile().GetContent()) {
			if seen[ref.Text] {
				continue
			}
			seen[ref.Text] = true
			vm = append(vm, issueVM{Kind: ref.Kind.String(), Link: link(f, ref)})
		}
	}
	if len(vm) == 0 {
		return nil, nil //nolint:nilnil // no references means no index page
	}

	var out bytes.Buffer
	if err := issueIndex.Execute(&out, vm); err != nil {
		return nil, fmt.Errorf("failed to execute issue index template: %w", err)
	}
	return osdd.MaterializedResult_Entry_builder{
		File: osdd.FullFileContent_builder{
			Path:    IssueIndexPath,
			Content: out.String(),
		}.Build(),
	}.Build(), nil
}

// link renders a single reference as markup. Reference text only holds
// [A-Z0-9#_-]; the anchor around it comes from the tracker configuration.
func link(f *formatter.Formatter, ref issues.Reference) template.HTML {
	return template.HTML(f.AddLinks(ref.Text)) //nolint:gosec // anchors are built by the formatter
}

func isHTML(e *osdd.MaterializedResult_Entry) bool {
	if e == nil || !e.HasFile() {
		return false
	}
	switch strings.ToLower(filepath.Ext(e.GetFile().GetPath())) {
	case ".html", ".htm":
		return true
	}
	return false
}
