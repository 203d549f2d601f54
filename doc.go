// Package errkind provides a closed vocabulary of error kinds.
//
// Subsystems that report failures (file I/O, parsers, resource loaders,
// allocators, network clients, validators, permission checks) classify them
// with an ErrorKind instead of ad-hoc strings, so failures can be logged,
// compared and serialized uniformly.
//
// The package is a vocabulary only. It does not detect failures and does not
// attach messages, paths or causes to them; callers keep their own error types
// and expose a kind through the Classifier interface.
//
// # Kinds
//
// Each kind has a fixed integer value. Values are grouped by tens:
//
//   - 0: KindOK
//   - 1-6: file and I/O (KindFileNotFound ... KindFileEOF)
//   - 10-12: parsing (KindParseError, KindInvalidFormat, KindInvalidData)
//   - 20-24: resources (KindResourceNotFound ... KindResourceBusy)
//   - 30-31: memory (KindOutOfMemory, KindMemoryLeak)
//   - 40-42: network (KindNetworkTimeout ... KindNetworkRequestFailed)
//   - 50-52: validation (KindInvalidParameter, KindOutOfRange, KindNullPointer)
//   - 60-62: system (KindUnavailable, KindUnauthorized, KindPermissionDenied)
//   - 999: KindUnknownError
//
// The grouping is not checked at runtime. Use Category to classify a kind.
//
// # Labels
//
// String returns the canonical label of a kind, which is its name in upper
// snake case:
//
//	fmt.Println(errkind.KindFileCantOpen) // FILE_CANT_OPEN
//
// Go allows any integer to be converted to ErrorKind, so String also handles
// values outside the taxonomy by returning FallbackLabel ("UNKNOWN"). This is
// distinct from KindUnknownError ("UNKNOWN_ERROR"), which is a real kind
// meaning the failure was classified as unknown. Use IsValid, FromCode or
// ParseKind to validate values that come from outside the program.
//
// # Serialization
//
// Kinds cross process and storage boundaries as their integer value, never
// their label. ErrorKind implements json.Marshaler, json.Unmarshaler,
// yaml.Marshaler and yaml.Unmarshaler accordingly; decoding rejects labels and
// unassigned values with an error wrapping ErrInvalidKind.
//
//	type Result struct {
//	    Kind errkind.ErrorKind `json:"kind" yaml:"kind"`
//	}
//
// For logging, ErrorKind implements slog.LogValuer and renders both the code
// and the label.
//
// # Classifying errors
//
// Errors that implement Classifier report their kind through KindOf, which
// searches the error chain:
//
//	if errkind.Is(err, errkind.KindResourceBusy) {
//	    // Wait for the lock
//	}
//
//	if errkind.IsRetryable(err) {
//	    // Retry with backoff
//	}
//
// Each kind carries a default ErrorClassification. Timeouts, busy resources,
// network failures and KindUnavailable are retryable; everything else is
// permanent.
//
// # Concurrency
//
// Kinds are constants and every function in the package is pure. All of it is
// safe for concurrent use.
package errkind
