package health

import (
	"net/http"

	"github.com/dmitrymomot/fileserve/core/handler"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return text(http.StatusOK, "ALIVE")
}

func text(status int, body string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		return err
	}
}
