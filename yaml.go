package errkind

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler.
// Like JSON, a kind is encoded as its integer value.
func (k ErrorKind) MarshalYAML() (interface{}, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: cannot encode code %d", ErrInvalidKind, int(k))
	}
	return int(k), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Only an integer scalar naming a kind is accepted; quoted values, labels and
// unassigned codes return an error wrapping ErrInvalidKind and leave k unchanged.
//
// Example:
//
//	retry_on: [23, 24, 40]
func (k *ErrorKind) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!int" {
		return fmt.Errorf("%w: line %d: %q is not an integer code", ErrInvalidKind, value.Line, value.Value)
	}

	var code int
	if err := value.Decode(&code); err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrInvalidKind, value.Line, err)
	}

	kind, err := FromCode(code)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
