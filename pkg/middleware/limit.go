package middleware

import "net/http"

// MaxBytes returns middleware that caps request bodies at limit bytes.
// Reads beyond the limit fail, which JSON handlers surface as 400 responses.
func MaxBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
