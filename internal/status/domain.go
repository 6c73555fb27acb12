// Package status turns `git status --short` output into structured entries.
package status

import "strings"

type Kind string

const (
	KindModified  Kind = "modified"
	KindAdded     Kind = "added"
	KindDeleted   Kind = "deleted"
	KindRenamed   Kind = "renamed"
	KindUpdated   Kind = "updated" // unmerged
	KindCopied    Kind = "copied"
	KindUntracked Kind = "untracked"
	KindUnknown   Kind = "unknown"
)

// classification is evaluated in order; the first marker found in the short
// status code wins, so "MD" is Modified and "AM" is Modified too.
var classification = []struct {
	marker string
	kind   Kind
}{
	{"M", KindModified},
	{"D", KindDeleted},
	{"A", KindAdded},
	{"R", KindRenamed},
	{"U", KindUpdated},
	{"C", KindCopied},
	{"??", KindUntracked},
}

// Classify maps a short status code to its Kind.
func Classify(code string) Kind {
	for _, c := range classification {
		if strings.Contains(code, c.marker) {
			return c.kind
		}
	}
	return KindUnknown
}

// Label is the human readable name shown next to a file.
func (k Kind) Label() string {
	switch k {
	case KindModified:
		return "Modified"
	case KindAdded:
		return "Added"
	case KindDeleted:
		return "Deleted"
	case KindRenamed:
		return "Renamed"
	case KindUpdated:
		return "Updated"
	case KindCopied:
		return "Copied"
	case KindUntracked:
		return "Untracked"
	default:
		return "Unknown"
	}
}

// Linkable reports whether a diff view exists for entries of this kind.
// Untracked files have no HEAD version to diff against.
func (k Kind) Linkable() bool {
	return k != KindUntracked
}

type Entry struct {
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}
