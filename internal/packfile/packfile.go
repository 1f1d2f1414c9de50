// Package packfile maintains the translation JSON files of a compendium
// content pack: reducing packs to their translatable fields, merging
// translated text back into the originals, and normalizing key order.
package packfile

// ReducedSuffix marks the sidecar files holding only translatable content.
const ReducedSuffix = ".reduced.json"

// keepKeys are the fields preserved by reduction; the same set bounds
// which string fields a merge may overwrite.
var keepKeys = map[string]bool{
	"label":       true,
	"_id":         true,
	"name":        true,
	"tokenName":   true,
	"description": true,
	"notes":       true,
}

// isEmptyValue reports whether a cleaned subtree carries no content.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}

// CleanEntry reduces one entry recursively, keeping only the fields in
// keepKeys. Containers that end up empty are dropped; scalar fields
// outside the keep set are dropped too.
func CleanEntry(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any)
		for k, val := range t {
			if keepKeys[k] {
				out[k] = val
				continue
			}
			switch val.(type) {
			case map[string]any, []any:
				cleaned := CleanEntry(val)
				if !isEmptyValue(cleaned) {
					out[k] = cleaned
				}
			}
		}
		return out

	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			cleaned := CleanEntry(item)
			if !isEmptyValue(cleaned) {
				out = append(out, cleaned)
			}
		}
		return out

	default:
		return nil
	}
}

// ReduceEntries applies CleanEntry inside every "entries" object while
// preserving the surrounding structure. Only objects are descended
// into; arrays pass through untouched.
func ReduceEntries(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}

	out := make(map[string]any, len(m))
	for k, val := range m {
		if k == "entries" {
			if entries, ok := val.(map[string]any); ok {
				reduced := make(map[string]any, len(entries))
				for ek, ev := range entries {
					reduced[ek] = CleanEntry(ev)
				}
				out[k] = reduced
				continue
			}
		}
		out[k] = ReduceEntries(val)
	}
	return out
}

// HasEntriesNonempty reports whether a non-empty "entries" object
// exists anywhere in the document.
func HasEntriesNonempty(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		if entries, ok := t["entries"].(map[string]any); ok && len(entries) > 0 {
			return true
		}
		for _, val := range t {
			if HasEntriesNonempty(val) {
				return true
			}
		}
	case []any:
		for _, item := range t {
			if HasEntriesNonempty(item) {
				return true
			}
		}
	}
	return false
}

// HasTranslatableList reports whether the document contains an array of
// objects carrying at least one translatable field besides "_id".
func HasTranslatableList(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		for _, val := range t {
			if HasTranslatableList(val) {
				return true
			}
		}
	case []any:
		for _, item := range t {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			for k := range keepKeys {
				if k == "_id" {
					continue
				}
				if _, present := obj[k]; present {
					return true
				}
			}
			if HasTranslatableList(obj) {
				return true
			}
		}
	}
	return false
}
