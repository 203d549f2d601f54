package errkind

import "errors"

// ErrInvalidKind is returned when a label, code or encoded value does not name
// a member of the taxonomy. Errors returned by this package wrap it and can be
// checked with errors.Is.
var ErrInvalidKind = errors.New("invalid error kind")
