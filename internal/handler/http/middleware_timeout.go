package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// withTimeout bounds the request context by the configured request timeout.
// When the deadline passes before the handler wrote anything, the client
// gets a 504 JSON error.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r.WithContext(ctx))

		if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			writeError(rw, r, fmt.Errorf("%w after %s", ErrRequestTimeout, h.requestTimeout.Round(time.Millisecond)))
		}
	})
}
