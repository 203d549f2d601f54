package errkind

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON implements json.Marshaler.
// A kind is encoded as its bare integer value, never as its label:
//
//	type Result struct {
//	    Kind errkind.ErrorKind `json:"kind"`
//	}
//	// {"kind":23}
//
// Values outside the taxonomy cannot be encoded and return an error wrapping
// ErrInvalidKind.
func (k ErrorKind) MarshalJSON() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: cannot encode code %d", ErrInvalidKind, int(k))
	}
	return strconv.AppendInt(nil, int64(k), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// Only a JSON integer naming a kind is accepted. Labels, fractional numbers
// and unassigned codes return an error wrapping ErrInvalidKind and leave k
// unchanged. A JSON null is a no-op.
func (k *ErrorKind) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("%w: %s is not an integer code: %w", ErrInvalidKind, data, err)
	}

	kind, err := FromCode(code)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
