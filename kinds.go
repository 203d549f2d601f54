package errkind

// ErrorKind classifies a failure.
// Kinds are integer-backed and the integer value is the wire representation:
// once a value is assigned it is never reused for a different meaning.
//
// Values are grouped by tens per category. The grouping is a reading aid only;
// use Category to classify a kind.
type ErrorKind int

const (
	// KindOK indicates the absence of an error.
	KindOK ErrorKind = 0

	// File and I/O errors.

	// KindFileNotFound indicates a file does not exist.
	KindFileNotFound ErrorKind = 1

	// KindFileCantOpen indicates a file exists but could not be opened.
	KindFileCantOpen ErrorKind = 2

	// KindFileCantRead indicates reading from an open file failed.
	KindFileCantRead ErrorKind = 3

	// KindFileCantWrite indicates writing to an open file failed.
	KindFileCantWrite ErrorKind = 4

	// KindFileCorrupt indicates file contents are damaged or truncated.
	KindFileCorrupt ErrorKind = 5

	// KindFileEOF indicates an unexpected end of file.
	KindFileEOF ErrorKind = 6

	// Parsing errors.

	// KindParseError indicates input could not be parsed.
	KindParseError ErrorKind = 10

	// KindInvalidFormat indicates input is not in the expected format.
	KindInvalidFormat ErrorKind = 11

	// KindInvalidData indicates input parsed but its contents are invalid.
	KindInvalidData ErrorKind = 12

	// Resource loading errors.

	// KindResourceNotFound indicates a requested resource does not exist.
	KindResourceNotFound ErrorKind = 20

	// KindResourceLoadFailed indicates a resource exists but failed to load.
	KindResourceLoadFailed ErrorKind = 21

	// KindResourceSaveFailed indicates a resource failed to save.
	KindResourceSaveFailed ErrorKind = 22

	// KindResourceTimeout indicates a resource operation exceeded its time limit.
	KindResourceTimeout ErrorKind = 23

	// KindResourceBusy indicates a resource is held by another operation.
	KindResourceBusy ErrorKind = 24

	// Memory errors.

	// KindOutOfMemory indicates an allocation could not be satisfied.
	KindOutOfMemory ErrorKind = 30

	// KindMemoryLeak indicates memory was not released.
	KindMemoryLeak ErrorKind = 31

	// Network errors.

	// KindNetworkTimeout indicates a network operation exceeded its time limit.
	KindNetworkTimeout ErrorKind = 40

	// KindNetworkConnectionFailed indicates a connection could not be established.
	KindNetworkConnectionFailed ErrorKind = 41

	// KindNetworkRequestFailed indicates a request was sent but did not succeed.
	KindNetworkRequestFailed ErrorKind = 42

	// Validation errors.

	// KindInvalidParameter indicates an argument is invalid.
	KindInvalidParameter ErrorKind = 50

	// KindOutOfRange indicates a value falls outside its permitted range.
	KindOutOfRange ErrorKind = 51

	// KindNullPointer indicates a required reference was nil.
	KindNullPointer ErrorKind = 52

	// System errors.

	// KindUnavailable indicates a service or facility is temporarily unavailable.
	KindUnavailable ErrorKind = 60

	// KindUnauthorized indicates missing or invalid credentials.
	KindUnauthorized ErrorKind = 61

	// KindPermissionDenied indicates the caller lacks permission for the operation.
	KindPermissionDenied ErrorKind = 62

	// Unknown.

	// KindUnknownError indicates a failure that was classified as unknown.
	// It is a member of the taxonomy; see FallbackLabel for values that are not.
	KindUnknownError ErrorKind = 999
)

// allKinds is the closed set in ascending order.
// It is an array so its length is a compile-time constant.
var allKinds = [...]ErrorKind{
	KindOK,

	KindFileNotFound,
	KindFileCantOpen,
	KindFileCantRead,
	KindFileCantWrite,
	KindFileCorrupt,
	KindFileEOF,

	KindParseError,
	KindInvalidFormat,
	KindInvalidData,

	KindResourceNotFound,
	KindResourceLoadFailed,
	KindResourceSaveFailed,
	KindResourceTimeout,
	KindResourceBusy,

	KindOutOfMemory,
	KindMemoryLeak,

	KindNetworkTimeout,
	KindNetworkConnectionFailed,
	KindNetworkRequestFailed,

	KindInvalidParameter,
	KindOutOfRange,
	KindNullPointer,

	KindUnavailable,
	KindUnauthorized,
	KindPermissionDenied,

	KindUnknownError,
}

// kindCount is the number of kinds in the taxonomy.
const kindCount = 27

// Fails to compile if allKinds and kindCount disagree.
var (
	_ [len(allKinds) - kindCount]struct{}
	_ [kindCount - len(allKinds)]struct{}
)

// Kinds returns every kind in ascending order of value.
// The returned slice is a copy and may be modified by the caller.
func Kinds() []ErrorKind {
	kinds := make([]ErrorKind, len(allKinds))
	copy(kinds, allKinds[:])
	return kinds
}

// Code returns the integer value of the kind.
// This is the value to use when a kind crosses a process or storage boundary.
func (k ErrorKind) Code() int {
	return int(k)
}

// IsValid reports whether k is a member of the taxonomy.
// Values built by converting an arbitrary integer may not be.
func (k ErrorKind) IsValid() bool {
	return k.String() != FallbackLabel
}
