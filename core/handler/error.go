package handler

import (
	"errors"
	"net/http"
)

// statusCoder is implemented by errors that carry their own HTTP status.
type statusCoder interface {
	StatusCode() int
}

// StatusCode returns the HTTP status for err: the status of the first error in
// the chain implementing StatusCode() int, or 500.
func StatusCode(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// DefaultErrorHandler writes the status text for err.
// The error message itself is never sent to the client.
func DefaultErrorHandler[C Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if Written(w) {
		return
	}

	status := StatusCode(err)
	http.Error(w, http.StatusText(status), status)
}
