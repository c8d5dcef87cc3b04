package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// IntString accepts a JSON number or a numeric string and holds an int.
// The dashboard forms historically submitted quantities as strings; the
// coercion happens here at the boundary, never in storage.
type IntString int

func (n *IntString) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	*n = IntString(v)
	return nil
}

func (n IntString) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

func (n IntString) Int() int { return int(n) }
