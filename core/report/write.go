package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/opensdd/osdd-api/clients/go/osdd"
)

// Write publishes res under root: HTML files are linked through Link, the
// IssueIndex page is added when the report references any issue, and every
// entry is then written out. An issues.html already present in res is
// replaced by the generated index.
//
// Directories are created with 0755 and files with 0644, overwriting what is
// there. Absolute entry paths are taken relative to root; paths leaving root
// are rejected.
func (l *Linker) Write(ctx context.Context, root string, res *osdd.MaterializedResult) error {
	if strings.TrimSpace(root) == "" {
		return fmt.Errorf("report root cannot be empty")
	}
	linked, err := l.Link(res)
	if err != nil {
		return err
	}
	entries := linked.GetEntries()

	// References are collected from the unlinked report so anchors built by
	// Link are not mistaken for new references.
	index, err := IssueIndex(res, l.Formatter)
	if err != nil {
		return fmt.Errorf("failed to build issue index: %w", err)
	}
	if index != nil {
		entries = append(entries, index)
	}

	return writeEntries(ctx, filepath.Clean(root), entries)
}

func writeEntries(_ context.Context, root string, entries []*osdd.MaterializedResult_Entry) error {
	log := slog.With("op", "report.Write", "root", root)
	written := 0
	for i, e := range entries {
		switch {
		case e == nil:
			continue
		case e.HasDirectory():
			dir := strings.TrimSpace(e.GetDirectory())
			if dir == "" {
				continue
			}
			target, err := inRoot(root, dir)
			if err != nil {
				return fmt.Errorf("report entry %d: %w", i, err)
			}
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("report entry %d: failed to create directory %s: %w", i, target, err)
			}
		case e.HasFile():
			f := e.GetFile()
			name := strings.TrimSpace(f.GetPath())
			if name == "" {
				return fmt.Errorf("report entry %d: file path cannot be empty", i)
			}
			target, err := inRoot(root, name)
			if err != nil {
				return fmt.Errorf("report entry %d: %w", i, err)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("report entry %d: failed to create directory for %s: %w", i, target, err)
			}
			if err := os.WriteFile(target, []byte(f.GetContent()), 0o644); err != nil {
				return fmt.Errorf("report entry %d: failed to write %s: %w", i, target, err)
			}
			written++
		}
	}
	log.Debug("Report written", "files", written)
	return nil
}

// inRoot maps a report path below root.
func inRoot(root, p string) (string, error) {
	target := filepath.Join(root, strings.TrimPrefix(filepath.Clean(p), string(os.PathSeparator)))
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %s is outside the report root", p)
	}
	return target, nil
}
