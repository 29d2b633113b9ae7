package profile

// Record is the flat server-side representation of a profile or job:
// field name to scalar value, plus attachment slots holding a URL or nil.
// Values arrive through JSON decoding, so numbers are float64 and list
// fields are []any until coerced.
type Record map[string]any

// FormValues holds the raw, uncoerced local edits, keyed by field name.
type FormValues map[string]string

// Lines is an ordered sequence of non-empty text lines (e.g. a requirements
// field edited as a textarea).
type Lines []string

// Tags is a deduplicated, insertion-ordered list of free-text tags.
type Tags []string

// slotValue returns the remote attachment URL for slot, or "" when the slot
// is absent or null.
func (r Record) slotValue(slot string) string {
	v, ok := r[slot]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
