package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/klbeton/pointage-backend-go/internal/domain/auth"
	"github.com/klbeton/pointage-backend-go/internal/domain/user"
	"github.com/klbeton/pointage-backend-go/internal/handler/http/response"
)

func claimRole(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", auth.ErrInvalidToken
	}
	return user.Role(role), nil
}

// AdminOnly restricts a route to ADMIN accounts.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := claimRole(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOnly restricts a route to ADMIN and CHEF accounts, the roles allowed
// to ingest sheets and review advances.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := claimRole(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin && role != user.RoleChef {
			response.HandleError(w, user.ErrManagerRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
