package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a stored document. Records held by a store always carry plain
// JSON types: string, bool, json.Number, []any and map[string]any. The
// stores guarantee this by normalizing every record on insert/update.
type Record map[string]any

// ID returns the record's integer identifier.
func (r Record) ID() (int64, bool) {
	switch v := r["id"].(type) {
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// Normalize round-trips v through JSON so that the result carries only plain
// JSON types. Numbers decode as json.Number to keep millisecond identifiers
// exact.
func Normalize(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("model.Normalize marshal: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("model.Normalize decode: %w", err)
	}
	return rec, nil
}

// TimestampLayout renders timestamps the way the API stores them:
// millisecond-precision ISO 8601 in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
