package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports a field value that fails coercion or a required
// check. It is raised before any request is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Field, e.Reason)
}

// Coerce converts a raw form value to the typed representation declared by
// spec. String fields pass through unchanged; int fields parse as base-10
// integers; lines split into non-empty lines; tags split on commas with
// trim and dedupe.
func Coerce(spec FieldSpec, raw string) (any, error) {
	switch spec.Kind {
	case KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &ValidationError{Field: spec.Name, Reason: "not an integer"}
		}
		return n, nil

	case KindLines:
		lines := SplitLines(raw)
		if spec.Required && len(lines) == 0 {
			return nil, &ValidationError{Field: spec.Name, Reason: "required"}
		}
		return lines, nil

	case KindTags:
		var ts TagSet
		for _, part := range strings.Split(raw, ",") {
			ts.Add(part)
		}
		return Tags(ts.Values()), nil

	default:
		if spec.Required && strings.TrimSpace(raw) == "" {
			return nil, &ValidationError{Field: spec.Name, Reason: "required"}
		}
		return raw, nil
	}
}

// FormatValue renders a remote value as the raw form representation used
// for editing, the inverse of Coerce.
func FormatValue(spec FieldSpec, v any) string {
	if v == nil {
		return ""
	}
	switch spec.Kind {
	case KindInt:
		return strconv.Itoa(remoteInt(v))
	case KindLines:
		return strings.Join(remoteStrings(v), "\n")
	case KindTags:
		return strings.Join(remoteStrings(v), ", ")
	default:
		s, _ := v.(string)
		return s
	}
}

// SplitLines splits a textarea-shaped value into its non-empty lines,
// preserving order. Carriage returns and surrounding whitespace per line
// are dropped.
func SplitLines(raw string) Lines {
	var lines Lines
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// remoteInt normalizes a JSON-decoded numeric value.
func remoteInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// remoteStrings normalizes a JSON-decoded list value.
func remoteStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case Lines:
		return list
	case Tags:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
