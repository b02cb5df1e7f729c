package blogs

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Tags is a string set stored as a JSON array in a text column, so the
// same model works on postgres and the sqlite driver used in tests.
// Elements are JSON-quoted in the column, which is what makes the
// exact-membership filter in the list query possible with a plain LIKE.
type Tags []string

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *Tags) Scan(src interface{}) error {
	if src == nil {
		*t = Tags{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}
	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}
	return json.Unmarshal(raw, (*[]string)(t))
}
