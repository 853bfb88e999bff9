package tags

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bgraf/tagwerk/util/slices"
)

// maxUnwrapDepth bounds the recursive repair of double-encoded values.
// Beyond it the value is kept as literal text.
const maxUnwrapDepth = 5

// ParseInput accepts whatever shape of tag data arrives at the ingestion
// boundary and flattens it to plain strings:
//
//   - nil or an empty string yields an empty slice,
//   - a string that parses as a JSON array yields its elements,
//   - any other string is split on commas, each piece trimmed,
//   - a slice passes through, non-string elements stringified.
//
// It never fails; an unexpected scalar is treated like its string form.
func ParseInput(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		return parseString(v)
	case []string:
		return append([]string{}, v...)
	case []interface{}:
		return slices.CoerceStrings(v)
	default:
		return parseString(fmt.Sprint(v))
	}
}

func parseString(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return []string{}
	}

	if parsed, ok := parseJSONArray(value); ok {
		return parsed
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func parseJSONArray(value string) ([]string, bool) {
	if !strings.HasPrefix(value, "[") {
		return nil, false
	}

	var elements []interface{}
	if err := json.Unmarshal([]byte(value), &elements); err != nil {
		// Looks like JSON but is not; treat as literal text.
		return nil, false
	}

	return slices.CoerceStrings(elements), true
}

// CleanForStorage repairs double-encoding artifacts left by the legacy
// write path: elements that are themselves JSON array literals are
// unwrapped until plain text remains, trimmed, and dropped when empty.
// The result of one pass is a fixed point of the next. An element nested
// deeper than the repair budget is kept as literal text in full, so that
// repeated passes never peel it further.
func CleanForStorage(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		unwrapped, ok := unwrap(value, 0)
		if !ok {
			unwrapped = []string{value}
		}

		for _, u := range unwrapped {
			if u = strings.TrimSpace(u); u != "" {
				out = append(out, u)
			}
		}
	}

	return out
}

// unwrap reports false when the value nests beyond maxUnwrapDepth; the
// caller then treats the whole value as a literal.
func unwrap(value string, depth int) ([]string, bool) {
	trimmed := strings.TrimSpace(value)

	parsed, ok := parseJSONArray(trimmed)
	if !ok {
		return []string{trimmed}, true
	}

	if depth >= maxUnwrapDepth {
		return nil, false
	}

	var out []string
	for _, element := range parsed {
		sub, ok := unwrap(element, depth+1)
		if !ok {
			return nil, false
		}
		out = append(out, sub...)
	}

	return out, true
}
