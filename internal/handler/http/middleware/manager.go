package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/auth"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/handler/http/response"
)

// ManagerOnly rejects callers without the manager role. Services still
// re-check; this just fails fast at the route boundary.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleManager) {
			response.HandleError(w, user.ErrManagerRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
