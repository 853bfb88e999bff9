package slices

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// CoerceStrings converts a mixed-type slice, as produced by a generic JSON
// decode, to strings. Numbers and booleans take their textual form; other
// values fall back to their fmt representation.
func CoerceStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))

	for _, value := range values {
		switch v := value.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out = append(out, strconv.FormatBool(v))
		case nil:
			out = append(out, "")
		case []interface{}:
			// Keep nested arrays in their JSON form so the storage
			// cleaner can unwrap them.
			if encoded, err := json.Marshal(v); err == nil {
				out = append(out, string(encoded))
			}
		default:
			out = append(out, fmt.Sprint(v))
		}
	}

	return out
}
