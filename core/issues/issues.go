package issues

import "strings"

// Kind tells how an issue reference was written.
type Kind int

const (
	// Full references carry a project key and no hash, e.g. PROJ-123.
	Full Kind = iota
	// Shortened references start with a hash, e.g. #123 or #PROJ-123.
	Shortened
)

func (k Kind) String() string {
	switch k {
	case Full:
		return "full"
	case Shortened:
		return "shortened"
	default:
		return "unknown"
	}
}

// Reference is an issue reference found in free text.
type Reference struct {
	Text string
	Kind Kind
}

// Key returns the issue key the reference points at, without the leading hash.
func (r Reference) Key() string {
	return strings.TrimPrefix(r.Text, "#")
}
