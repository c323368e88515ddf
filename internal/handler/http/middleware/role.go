package middleware

import (
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
)

// RequireOperation rejects callers whose role is not granted op outright.
// Self-scoped operations are left to the service, which knows the owner.
func RequireOperation(op auth.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := auth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if err := auth.Authorize(claims, op); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
