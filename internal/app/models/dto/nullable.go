package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// NullableID is a reference to another record as sent by forms: a number, a
// numeric string, an empty string or null. Empty values mean no reference.
type NullableID struct {
	id *int64
}

// NewNullableID creates a NullableID holding id
func NewNullableID(id int64) NullableID {
	return NullableID{id: &id}
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.id = nil
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid reference %s: must be a number", data)
	}
	n.id = &id
	return nil
}

// MarshalJSON implements json.Marshaler
func (n NullableID) MarshalJSON() ([]byte, error) {
	if n.id == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(*n.id, 10)), nil
}

// Ptr returns the referenced id or nil
func (n NullableID) Ptr() *int64 {
	return n.id
}

// Valid reports whether a reference is set
func (n NullableID) Valid() bool {
	return n.id != nil
}

// parseDate converts an optional YYYY-MM-DD string. Validation has already
// checked the format, so a parse failure only happens for empty input.
func parseDate(value *string) *time.Time {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil
	}
	return &t
}

// emptyToNil stores blank optional text as NULL
func emptyToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
