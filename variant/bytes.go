package variant

import (
	"encoding/json"
	"fmt"
)

// Bytes is a byte slice encoded as a JSON array of numbers rather than base64.
// Contract call results come back in this form.
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	ints := make([]uint16, len(b))
	for i, v := range b {
		ints[i] = uint16(v)
	}
	return json.Marshal(ints)
}

func (b *Bytes) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	if ints == nil {
		*b = nil
		return nil
	}
	out := make(Bytes, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte %d out of range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// String returns the bytes as text, which is how most view functions encode
// their JSON results.
func (b Bytes) String() string {
	return string(b)
}

// Decode unmarshals the bytes as JSON into v.
func (b Bytes) Decode(v interface{}) error {
	return json.Unmarshal(b, v)
}
