package middleware

import (
	"net/http"

	"github.com/dangerclosesec/nextintern/internal/audit"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AuditContext records the caller's request id, address and user agent so
// decision logs written by services can be traced back to the request.
func AuditContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithClient(r.Context(), audit.Client{
			RequestID: chimw.GetReqID(r.Context()),
			IP:        r.RemoteAddr,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
