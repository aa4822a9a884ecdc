// Package scoring turns stored candidate profiles into a bounded composite
// score using one deterministic rule engine and one model-backed assessment.
package scoring

import (
	"fmt"
	"strings"
)

// AbsentField is the display value for a field with no usable content.
const AbsentField = "N/A"

// FormatListField renders a stored field that may be a string slice, a
// delimited string, or absent into one comma-and-space-joined string.
// Stored records predate a single canonical representation, so the reader
// has to accept all of them. Idempotent: formatting an already formatted
// string returns it unchanged.
func FormatListField(value any) string {
	switch v := value.(type) {
	case nil:
		return AbsentField
	case []string:
		if len(v) == 0 {
			return AbsentField
		}
		return strings.Join(v, ", ")
	case []any:
		if len(v) == 0 {
			return AbsentField
		}
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", ")
	case string:
		if strings.TrimSpace(v) == "" {
			return AbsentField
		}
		segments := strings.Split(v, ",")
		parts := make([]string, 0, len(segments))
		for _, seg := range segments {
			seg = strings.TrimSpace(seg)
			if seg == "" {
				continue
			}
			parts = append(parts, seg)
		}
		if len(parts) == 0 {
			return AbsentField
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
