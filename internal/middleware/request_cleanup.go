package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps request bodies; drafts and routines are a few KB at most.
const MaxRequestBodyBytes = 1 << 20

// LimitAndDrainRequest caps the body at maxBytes and, once the handler is done,
// drains and closes it so the connection can be reused. Reading past the cap fails
// with *http.MaxBytesError, which handlers see as a malformed body.
func LimitAndDrainRequest(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)

			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
