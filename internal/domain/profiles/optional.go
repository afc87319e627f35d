package profiles

import (
	"bytes"
	"encoding/json"
)

// OptionalString records whether a JSON key was present and, if so, its value.
// A present null, or any value that is not a string, leaves Value nil with Set true.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked for keys present in the payload.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		o.Value = nil
		return nil
	}
	o.Value = &s
	return nil
}

// Some returns a set OptionalString holding s
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}
