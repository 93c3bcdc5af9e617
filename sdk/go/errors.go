package helpdesksdk

import "errors"

var (
	ErrBusy          = errors.New("operation already in progress")
	ErrReadOnly      = errors.New("order is closed and cannot be edited")
	ErrNotLoaded     = errors.New("order not loaded")
	ErrInvalidStatus = errors.New("status must be open or closed")
)

// ValidationError is a local failure detected before any request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RemoteError is a failed request translated into a user-facing message.
type RemoteError struct {
	Message string
	Err     error
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Unwrap() error { return e.Err }
