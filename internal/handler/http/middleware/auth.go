package middleware

import (
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired runs after jwtauth.Verifier and turns the verified token into
// session claims on the request context.
func AuthRequired(tokens jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := tokens.ClaimsFromToken(token)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), claims)))
		}
		return http.HandlerFunc(hfn)
	}
}
