package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BoolLike is a bool that tolerates the loose representations the legacy
// API produced: true/false, 0/1, and the strings "0"/"1"/"true"/"false".
// It always marshals back as a plain JSON bool, so the mixed representation
// never leaves the API boundary.
type BoolLike bool

func (b BoolLike) Bool() bool { return bool(b) }

func (b BoolLike) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

func (b *BoolLike) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null":
		return nil
	case "true", "1", `"1"`, `"true"`:
		*b = true
		return nil
	case "false", "0", `"0"`, `"false"`, `""`:
		*b = false
		return nil
	}
	// Numbers other than 0/1 ("2", "1.0") are not valid statuses.
	return fmt.Errorf("invalid boolean value: %s", data)
}

func (b BoolLike) Value() (driver.Value, error) {
	return bool(b), nil
}

func (b *BoolLike) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case bool:
		*b = BoolLike(v)
	case int64:
		*b = v != 0
	case []byte:
		*b = len(v) > 0 && (v[0] == '1' || v[0] == 't' || v[0] == 'T')
	case string:
		*b = len(v) > 0 && (v[0] == '1' || v[0] == 't' || v[0] == 'T')
	default:
		return fmt.Errorf("cannot scan %T into BoolLike", src)
	}
	return nil
}
