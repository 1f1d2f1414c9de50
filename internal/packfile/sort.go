package packfile

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/vttbr/compendium-i18n/internal/errors"
)

// topLevelKeyOrder is the canonical order for the pack's top-level
// keys. Keys outside this list follow, sorted alphabetically.
var topLevelKeyOrder = []string{"label", "mapping", "folders", "entries"}

// orderedKeys returns the document's top-level keys in canonical order.
func orderedKeys(doc map[string]any) []string {
	keys := make([]string, 0, len(doc))
	known := make(map[string]bool, len(topLevelKeyOrder))

	for _, k := range topLevelKeyOrder {
		known[k] = true
		if _, ok := doc[k]; ok {
			keys = append(keys, k)
		}
	}

	var rest []string
	for k := range doc {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)

	return append(keys, rest...)
}

// MarshalDocument renders a pack document with the canonical top-level
// key order, two-space indentation, and no HTML escaping. Keys inside
// nested objects come out sorted, which keeps files diffable across
// round trips.
func MarshalDocument(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	keys := orderedKeys(doc)
	for i, k := range keys {
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode key %q", k)
		}

		buf.WriteString("  ")
		buf.Write(kb)
		buf.WriteString(": ")

		vb, err := encodeValue(doc[k])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode value of %q", k)
		}
		buf.Write(vb)

		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// encodeValue marshals one value indented to sit under a top-level key.
func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("  ", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
