package errkind

// ErrorClassification indicates whether a failure of a given kind should
// trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: network timeouts, busy resources, unavailable services.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing files, parse errors, permission denials.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// retryableKinds lists the kinds that default to ClassificationRetryable.
// Every other kind is permanent.
var retryableKinds = map[ErrorKind]struct{}{
	// Resource contention and timeouts
	KindResourceTimeout: {},
	KindResourceBusy:    {},

	// Network failures are usually transient
	KindNetworkTimeout:          {},
	KindNetworkConnectionFailed: {},
	KindNetworkRequestFailed:    {},

	KindUnavailable: {},
}

// Classification returns the default retry classification for the kind.
// KindOK and values outside the taxonomy are ClassificationPermanent (safe default).
func (k ErrorKind) Classification() ErrorClassification {
	if _, ok := retryableKinds[k]; ok {
		return ClassificationRetryable
	}
	return ClassificationPermanent
}

// IsRetryable returns true if failures of this kind are retryable by default.
func (k ErrorKind) IsRetryable() bool {
	return k.Classification().IsRetryable()
}
