package static

import (
	"errors"
	"fmt"
	"net/http"
)

// notHandledError marks a request this package declined to serve.
// The surrounding layer decides what "not found" looks like.
type notHandledError struct{}

func (notHandledError) Error() string   { return "static: request not handled" }
func (notHandledError) StatusCode() int { return http.StatusNotFound }

var (
	// ErrNotHandled is matched (errors.Is) by every error returned for a declined request.
	ErrNotHandled error = notHandledError{}

	ErrOutsidePrefix    = errors.New("static: request path is not under the matched prefix")
	ErrDirectoryRequest = errors.New("static: directory request with index serving disabled")
	ErrPathTraversal    = errors.New("static: path outside serving root")
	ErrNotFound         = errors.New("static: no file at resolved path")
	ErrDirectory        = errors.New("static: resolved path is a directory")
	ErrResponseStarted  = errors.New("static: response already written")
)

// declined wraps reason so that it matches both ErrNotHandled and reason.
func declined(reason error) error {
	return fmt.Errorf("%w: %w", ErrNotHandled, reason)
}

// RedirectError reports a directory redirect that could not be issued.
type RedirectError struct {
	Path string
	Err  error
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("static: redirect to %q failed: %v", e.Path, e.Err)
}

func (e *RedirectError) Unwrap() error   { return e.Err }
func (e *RedirectError) StatusCode() int { return http.StatusInternalServerError }

// ReadError reports a file whose full body could not be sent.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("static: read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error   { return e.Err }
func (e *ReadError) StatusCode() int { return http.StatusInternalServerError }
