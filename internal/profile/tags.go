package profile

import "strings"

// TagSet is an insertion-ordered set of free-text tags. Tags are trimmed on
// insertion and deduplicated case-sensitively; removal matches the exact
// string.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set from initial values, applying the usual trim and
// dedupe rules.
func NewTagSet(initial ...string) *TagSet {
	ts := &TagSet{}
	for _, tag := range initial {
		ts.Add(tag)
	}
	return ts
}

// Add inserts tag after trimming surrounding whitespace. Empty values and
// tags already present are no-ops.
func (ts *TagSet) Add(tag string) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" || ts.Contains(trimmed) {
		return
	}
	ts.tags = append(ts.tags, trimmed)
}

// Remove deletes tag by exact string match.
func (ts *TagSet) Remove(tag string) {
	for i, t := range ts.tags {
		if t == tag {
			ts.tags = append(ts.tags[:i], ts.tags[i+1:]...)
			return
		}
	}
}

// Contains reports whether tag is present (exact match).
func (ts *TagSet) Contains(tag string) bool {
	for _, t := range ts.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Values returns the tags in insertion order. The returned slice is a copy.
func (ts *TagSet) Values() []string {
	out := make([]string, len(ts.tags))
	copy(out, ts.tags)
	return out
}

// Len returns the number of tags in the set.
func (ts *TagSet) Len() int { return len(ts.tags) }
