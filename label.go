package errkind

import "fmt"

// FallbackLabel is the label for a value that is not a member of the taxonomy.
// It intentionally differs from the label of KindUnknownError: "UNKNOWN_ERROR"
// means the failure was classified as unknown, "UNKNOWN" means the value is
// not a classification at all.
const FallbackLabel = "UNKNOWN"

// String returns the canonical label of the kind, e.g. "FILE_NOT_FOUND".
// The label is the constant's name in upper snake case. For values outside
// the taxonomy it returns FallbackLabel. String never fails and never allocates.
//
// Labels are for logs and diagnostics. Use Code when a kind must be stored or
// sent elsewhere.
func (k ErrorKind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindFileNotFound:
		return "FILE_NOT_FOUND"
	case KindFileCantOpen:
		return "FILE_CANT_OPEN"
	case KindFileCantRead:
		return "FILE_CANT_READ"
	case KindFileCantWrite:
		return "FILE_CANT_WRITE"
	case KindFileCorrupt:
		return "FILE_CORRUPT"
	case KindFileEOF:
		return "FILE_EOF"
	case KindParseError:
		return "PARSE_ERROR"
	case KindInvalidFormat:
		return "INVALID_FORMAT"
	case KindInvalidData:
		return "INVALID_DATA"
	case KindResourceNotFound:
		return "RESOURCE_NOT_FOUND"
	case KindResourceLoadFailed:
		return "RESOURCE_LOAD_FAILED"
	case KindResourceSaveFailed:
		return "RESOURCE_SAVE_FAILED"
	case KindResourceTimeout:
		return "RESOURCE_TIMEOUT"
	case KindResourceBusy:
		return "RESOURCE_BUSY"
	case KindOutOfMemory:
		return "OUT_OF_MEMORY"
	case KindMemoryLeak:
		return "MEMORY_LEAK"
	case KindNetworkTimeout:
		return "NETWORK_TIMEOUT"
	case KindNetworkConnectionFailed:
		return "NETWORK_CONNECTION_FAILED"
	case KindNetworkRequestFailed:
		return "NETWORK_REQUEST_FAILED"
	case KindInvalidParameter:
		return "INVALID_PARAMETER"
	case KindOutOfRange:
		return "OUT_OF_RANGE"
	case KindNullPointer:
		return "NULL_POINTER"
	case KindUnavailable:
		return "UNAVAILABLE"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindPermissionDenied:
		return "PERMISSION_DENIED"
	case KindUnknownError:
		return "UNKNOWN_ERROR"
	default:
		return FallbackLabel
	}
}

// kindsByLabel maps each canonical label back to its kind.
// Duplicate labels fail to compile.
var kindsByLabel = map[string]ErrorKind{
	"OK":                        KindOK,
	"FILE_NOT_FOUND":            KindFileNotFound,
	"FILE_CANT_OPEN":            KindFileCantOpen,
	"FILE_CANT_READ":            KindFileCantRead,
	"FILE_CANT_WRITE":           KindFileCantWrite,
	"FILE_CORRUPT":              KindFileCorrupt,
	"FILE_EOF":                  KindFileEOF,
	"PARSE_ERROR":               KindParseError,
	"INVALID_FORMAT":            KindInvalidFormat,
	"INVALID_DATA":              KindInvalidData,
	"RESOURCE_NOT_FOUND":        KindResourceNotFound,
	"RESOURCE_LOAD_FAILED":      KindResourceLoadFailed,
	"RESOURCE_SAVE_FAILED":      KindResourceSaveFailed,
	"RESOURCE_TIMEOUT":          KindResourceTimeout,
	"RESOURCE_BUSY":             KindResourceBusy,
	"OUT_OF_MEMORY":             KindOutOfMemory,
	"MEMORY_LEAK":               KindMemoryLeak,
	"NETWORK_TIMEOUT":           KindNetworkTimeout,
	"NETWORK_CONNECTION_FAILED": KindNetworkConnectionFailed,
	"NETWORK_REQUEST_FAILED":    KindNetworkRequestFailed,
	"INVALID_PARAMETER":         KindInvalidParameter,
	"OUT_OF_RANGE":              KindOutOfRange,
	"NULL_POINTER":              KindNullPointer,
	"UNAVAILABLE":               KindUnavailable,
	"UNAUTHORIZED":              KindUnauthorized,
	"PERMISSION_DENIED":         KindPermissionDenied,
	"UNKNOWN_ERROR":             KindUnknownError,
}

// ParseKind returns the kind whose canonical label is label.
// Matching is exact and case-sensitive. FallbackLabel is not a kind and is
// rejected like any other unrecognized label.
//
// On failure it returns KindUnknownError and an error wrapping ErrInvalidKind.
//
// Example:
//
//	kind, err := errkind.ParseKind("RESOURCE_BUSY")
//	if err != nil {
//	    return err
//	}
func ParseKind(label string) (ErrorKind, error) {
	if kind, ok := kindsByLabel[label]; ok {
		return kind, nil
	}
	return KindUnknownError, fmt.Errorf("%w: unrecognized label %q", ErrInvalidKind, label)
}

// FromCode returns the kind with the given integer value.
// On failure it returns KindUnknownError and an error wrapping ErrInvalidKind.
func FromCode(code int) (ErrorKind, error) {
	kind := ErrorKind(code)
	if !kind.IsValid() {
		return KindUnknownError, fmt.Errorf("%w: unassigned code %d", ErrInvalidKind, code)
	}
	return kind, nil
}
