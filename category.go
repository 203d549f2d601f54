package errkind

// Category groups related kinds.
// Categories are string-based so they read well in logs and JSON.
type Category string

const (
	// CategorySuccess contains KindOK.
	CategorySuccess Category = "SUCCESS"

	// CategoryIO contains file and I/O kinds.
	CategoryIO Category = "IO"

	// CategoryParsing contains parsing kinds.
	CategoryParsing Category = "PARSING"

	// CategoryResource contains resource loading kinds.
	CategoryResource Category = "RESOURCE"

	// CategoryMemory contains memory kinds.
	CategoryMemory Category = "MEMORY"

	// CategoryNetwork contains network kinds.
	CategoryNetwork Category = "NETWORK"

	// CategoryValidation contains validation kinds.
	CategoryValidation Category = "VALIDATION"

	// CategorySystem contains system and permission kinds.
	CategorySystem Category = "SYSTEM"

	// CategoryUnknown contains KindUnknownError.
	CategoryUnknown Category = "UNKNOWN"

	// CategoryInvalid is reported for values outside the taxonomy.
	CategoryInvalid Category = "INVALID"
)

// Category returns the category the kind belongs to.
// Classification is by kind, not by numeric range: an unassigned value such
// as 7 is CategoryInvalid even though it sits between two I/O kinds.
func (k ErrorKind) Category() Category {
	switch k {
	case KindOK:
		return CategorySuccess
	case KindFileNotFound, KindFileCantOpen, KindFileCantRead,
		KindFileCantWrite, KindFileCorrupt, KindFileEOF:
		return CategoryIO
	case KindParseError, KindInvalidFormat, KindInvalidData:
		return CategoryParsing
	case KindResourceNotFound, KindResourceLoadFailed, KindResourceSaveFailed,
		KindResourceTimeout, KindResourceBusy:
		return CategoryResource
	case KindOutOfMemory, KindMemoryLeak:
		return CategoryMemory
	case KindNetworkTimeout, KindNetworkConnectionFailed, KindNetworkRequestFailed:
		return CategoryNetwork
	case KindInvalidParameter, KindOutOfRange, KindNullPointer:
		return CategoryValidation
	case KindUnavailable, KindUnauthorized, KindPermissionDenied:
		return CategorySystem
	case KindUnknownError:
		return CategoryUnknown
	default:
		return CategoryInvalid
	}
}
