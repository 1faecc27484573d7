package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/pricewatch-bot/pkg/ctxutil"
)

// RequestIDHeader is read from incoming requests and echoed on responses.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// RequestID returns middleware that stores a request ID in the context. An
// incoming header value is reused unless it is oversized.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
