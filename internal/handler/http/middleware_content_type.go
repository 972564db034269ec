package http

import (
	"mime"
	"net/http"
)

const contentTypeJSON = "application/json"

// withJSONContentType rejects requests whose Content-Type is not
// application/json with 415. Media type parameters such as charset are
// accepted.
func (h *Handler) withJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != contentTypeJSON {
			writeError(w, r, ErrUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
