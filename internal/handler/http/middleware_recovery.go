package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
)

// withRecovery turns a handler panic into a logged 500 JSON response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.withRecovery").
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			if rw.wroteHeader {
				return
			}
			writeError(rw, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec))
		}()

		next.ServeHTTP(rw, r)
	})
}
