package gate

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies why a connect attempt failed.
type ErrorKind string

const (
	ErrorKindAuth        ErrorKind = "auth"
	ErrorKindNetwork     ErrorKind = "network"
	ErrorKindTimeout     ErrorKind = "timeout"
	ErrorKindUnavailable ErrorKind = "unavailable"
	// ErrorKindCanceled means the caller gave up, which says nothing about
	// the device.
	ErrorKindCanceled ErrorKind = "canceled"
)

// ConnectError is the typed failure of Connector.Connect.
type ConnectError struct {
	Kind ErrorKind
	Err  error
}

func (e *ConnectError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("connect failed: %s", e.Kind)
	}
	return fmt.Sprintf("connect failed (%s): %v", e.Kind, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func NewAuthError(err error) *ConnectError {
	return &ConnectError{Kind: ErrorKindAuth, Err: err}
}

func NewNetworkError(err error) *ConnectError {
	return &ConnectError{Kind: ErrorKindNetwork, Err: err}
}

func NewTimeoutError(err error) *ConnectError {
	return &ConnectError{Kind: ErrorKindTimeout, Err: err}
}

func NewUnavailableError(err error) *ConnectError {
	return &ConnectError{Kind: ErrorKindUnavailable, Err: err}
}

// KindOf extracts the ErrorKind of err. Cancellation wins over any wrapping
// ConnectError. Deadline errors count as timeouts and anything unclassified
// as a network failure.
func KindOf(err error) ErrorKind {
	if errors.Is(err, context.Canceled) {
		return ErrorKindCanceled
	}
	var ce *ConnectError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}
	return ErrorKindNetwork
}
