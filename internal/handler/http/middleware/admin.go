package middleware

import (
	"net/http"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/auth"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/employee"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly gates the admin panel routes on the role claim.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(employee.RoleAdmin) {
			response.HandleError(w, auth.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
