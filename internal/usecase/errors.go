package usecase

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)

// RemoteError carries a store or upstream failure whose message is meant to
// reach the user verbatim. Everything else collapses to ErrInternal.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *RemoteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
