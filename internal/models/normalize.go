package models

import (
	"encoding/json"
	"time"
)

// The backend wire format diverged across app revisions: some payloads are
// snake_case, some camelCase, some carry derived fields the others spell
// differently. Decoding is the single place where both spellings are accepted
// and coerced into the canonical shapes in this package; missing fields fall
// back to zero values.

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

type raw map[string]json.RawMessage

func (r raw) string(keys ...string) string {
	for _, key := range keys {
		val, ok := r[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(val, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

func (r raw) time(keys ...string) time.Time {
	if s := r.string(keys...); s != "" {
		return parseTime(s)
	}
	return time.Time{}
}

func (r raw) timePtr(keys ...string) *time.Time {
	t := r.time(keys...)
	if t.IsZero() {
		return nil
	}
	return &t
}

func (r raw) int(keys ...string) int {
	for _, key := range keys {
		val, ok := r[key]
		if !ok {
			continue
		}
		var n int
		if err := json.Unmarshal(val, &n); err == nil && n != 0 {
			return n
		}
	}
	return 0
}

func (r raw) float(keys ...string) float64 {
	for _, key := range keys {
		val, ok := r[key]
		if !ok {
			continue
		}
		var f float64
		if err := json.Unmarshal(val, &f); err == nil && f != 0 {
			return f
		}
	}
	return 0
}

func (r raw) floatPtr(keys ...string) *float64 {
	for _, key := range keys {
		val, ok := r[key]
		if !ok {
			continue
		}
		var f *float64
		if err := json.Unmarshal(val, &f); err == nil && f != nil {
			return f
		}
	}
	return nil
}

func (r raw) bool(keys ...string) bool {
	for _, key := range keys {
		val, ok := r[key]
		if !ok {
			continue
		}
		var b bool
		if err := json.Unmarshal(val, &b); err == nil && b {
			return true
		}
	}
	return false
}

// object decodes the first present key into out. Returns false when no key
// carries a value.
func (r raw) object(out any, keys ...string) bool {
	for _, key := range keys {
		val, ok := r[key]
		if !ok || string(val) == "null" {
			continue
		}
		if err := json.Unmarshal(val, out); err == nil {
			return true
		}
	}
	return false
}
