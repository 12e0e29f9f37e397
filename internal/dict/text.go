package dict

import (
	"encoding/json"
	"fmt"
)

// DecodeText parses the JSON dictionary format used on the platforms whose
// engines read plain text dictionaries. Every field of every entry survives
// as written; no defaults are applied on the way in.
func DecodeText(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse text dictionary: %w", err)
	}
	return entries, nil
}

// EncodeText renders entries as a pretty-printed JSON array in entry order,
// with defaults merged into unset fields first. Only re-parseability is
// contractual; consumers must not depend on the exact bytes.
func EncodeText(entries []Entry) ([]byte, error) {
	merged := make([]Entry, len(entries))
	for i, e := range entries {
		merged[i] = ApplyDefaults(e)
	}
	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode text dictionary: %w", err)
	}
	return append(out, '\n'), nil
}
