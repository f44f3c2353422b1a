package docpath

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of at least one non-empty segment obtained by
// splitting a dotted key on ".".
type Path []string

// Parse splits a dotted key into a Path.
// Empty keys and keys containing empty segments ("a..b", ".a", "a.") are
// invalid: a path must have at least one non-empty segment.
func Parse(key string) (Path, error) {
	if key == "" {
		return nil, fmt.Errorf("empty key")
	}

	segs := strings.Split(key, ".")
	for i, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("key %q: empty segment at position %d", key, i)
		}
	}
	return Path(segs), nil
}

// Record returns the first segment, which names the top-level record.
func (p Path) Record() string {
	return p[0]
}

// Rest returns the segments after the first, addressing nested fields
// within the record. Empty for a single-segment path.
func (p Path) Rest() []string {
	return p[1:]
}

// String reassembles the dotted key.
func (p Path) String() string {
	return strings.Join(p, ".")
}
