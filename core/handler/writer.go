package handler

import "net/http"

// ResponseWriter is a minimal wrapper around http.ResponseWriter
// that tracks whether a response has been written.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

// NewResponseWriter wraps w. Wrapping an already tracked writer returns it unchanged.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	if ww, ok := w.(*ResponseWriter); ok {
		return ww
	}
	return &ResponseWriter{ResponseWriter: w}
}

func (w *ResponseWriter) WriteHeader(status int) {
	if !w.written {
		w.status = status
		w.written = true
		w.ResponseWriter.WriteHeader(status)
	}
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Written returns true if WriteHeader has been called.
func (w *ResponseWriter) Written() bool {
	return w.written
}

// Status returns the HTTP status code.
func (w *ResponseWriter) Status() int {
	return w.status
}

// Flush implements http.Flusher if the underlying ResponseWriter supports it.
func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Written reports whether w has already sent a status line.
// Writers that do not track this are assumed to be unwritten.
func Written(w http.ResponseWriter) bool {
	if ww, ok := w.(interface{ Written() bool }); ok {
		return ww.Written()
	}
	return false
}
