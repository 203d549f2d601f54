package errkind

import (
	"errors"
)

// Classifier is implemented by errors that carry a kind.
// This package defines no error type of its own; callers implement Classifier
// on the errors they already return.
//
// Example:
//
//	type LoadError struct {
//	    Path string
//	    Err  error
//	}
//
//	func (e *LoadError) Error() string           { return "load " + e.Path + ": " + e.Err.Error() }
//	func (e *LoadError) Unwrap() error           { return e.Err }
//	func (e *LoadError) Kind() errkind.ErrorKind { return errkind.KindResourceLoadFailed }
type Classifier interface {
	Kind() ErrorKind
}

// KindOf extracts the kind from an error.
// Returns KindOK if err is nil and KindUnknownError if no error in the chain
// implements Classifier.
//
// The kind is taken from the outermost Classifier in the chain.
//
// Example:
//
//	if errkind.KindOf(err) == errkind.KindFileNotFound {
//	    // Create the file
//	}
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindOK
	}

	var classifier Classifier
	if errors.As(err, &classifier) {
		return classifier.Kind()
	}

	return KindUnknownError
}

// Is reports whether err is classified as kind.
func Is(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// IsRetryable returns true if err is classified as a retryable kind.
// Returns false if err is nil or unclassified (safe default).
//
// Example:
//
//	if errkind.IsRetryable(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
func IsRetryable(err error) bool {
	return KindOf(err).IsRetryable()
}
