package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlatRecord is a single-level mapping from a dotted/bracketed path to the
// value extracted at that path.
type FlatRecord map[string]any

// FlattenPriorityFields flattens a nested field mapping into a FlatRecord.
// The model wraps each recognized field as {"value": ..., "coordinates": [...]};
// this keeps the value and drops everything else. Plain nested objects are
// recursed into with the child key appended to the path; terminal scalars and
// lists are carried through unchanged.
func FlattenPriorityFields(fields map[string]any, prefix string) FlatRecord {
	flat := FlatRecord{}
	for key, val := range fields {
		newKey := key
		if prefix != "" {
			newKey = prefix + "." + key
		}
		if m, ok := val.(map[string]any); ok {
			if inner, present := m["value"]; present {
				if inner == nil {
					inner = ""
				}
				flat[newKey] = inner
				continue
			}
			for k, v := range FlattenPriorityFields(m, newKey) {
				flat[k] = v
			}
			continue
		}
		flat[newKey] = val
	}
	return flat
}

// FlattenValuesOnly walks an arbitrary mapping/sequence tree and records every
// "value" leaf under the path of its PARENT object. This differs from
// FlattenPriorityFields, which appends the child key; both conventions are in
// use downstream, so they stay separate operations. Sequence elements get a
// bracketed index suffix. Terminal scalars emit nothing.
func FlattenValuesOnly(v any, prefix string, acc FlatRecord) {
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			if key == "value" {
				acc[prefix] = val
				continue
			}
			newKey := key
			if prefix != "" {
				newKey = prefix + "." + key
			}
			FlattenValuesOnly(val, newKey, acc)
		}
	case []any:
		for i, el := range t {
			FlattenValuesOnly(el, fmt.Sprintf("%s[%d]", prefix, i), acc)
		}
	}
}

// Stringify renders an extracted value for the fixed-schema records. Numbers
// keep their lexical form where the decoder preserved it (json.Number);
// composites are re-encoded as JSON so list-valued fields survive the trip to
// CSV and VARCHAR columns.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// lookupString resolves a dotted path in a FlatRecord, defaulting to "".
func lookupString(flat FlatRecord, path string) string {
	v, ok := flat[path]
	if !ok {
		return ""
	}
	return Stringify(v)
}
