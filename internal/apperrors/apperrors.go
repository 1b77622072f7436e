package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the service can report.
// Callers switch on kinds instead of comparing error strings.
type Kind string

const (
	KindInvalidRequest       Kind = "INVALID_REQUEST"
	KindInvalidStatus        Kind = "INVALID_STATUS"
	KindDuplicateRequest     Kind = "DUPLICATE_REQUEST"
	KindRideNotFound         Kind = "RIDE_NOT_FOUND"
	KindStorageUnavailable   Kind = "STORAGE_UNAVAILABLE"
	KindStorageMisconfigured Kind = "STORAGE_MISCONFIGURED"
	KindInternal             Kind = "INTERNAL"
)

// Error tags a failure with a Kind. Message is safe to return to the
// caller; the wrapped cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two errors by Kind, so errors.Is(err, apperrors.New(kind, ""))
// style sentinels work without string comparison.
func (e *Error) Is(target error) bool {
	var appErr *Error
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Kind == appErr.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from any error in the chain. Unclassified
// errors report KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ClientMessage returns the caller-safe message for an error. The cause
// of an unclassified error is never leaked.
func ClientMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Failed to process request"
}

// HTTPStatus maps an error to the response status for the HTTP surface.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest, KindInvalidStatus:
		return http.StatusBadRequest
	case KindDuplicateRequest:
		return http.StatusConflict
	case KindRideNotFound:
		return http.StatusNotFound
	case KindStorageUnavailable:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Retryable reports whether the caller may retry the failed operation.
func Retryable(err error) bool {
	return KindOf(err) == KindStorageUnavailable
}
