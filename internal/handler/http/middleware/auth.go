package middleware

import (
	"errors"
	"net/http"

	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/domain/auth"
	"github.com/EBUBEIWOBA/Winnies-Bakery-sub000/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. Refresh
// tokens (type != "access") are not accepted here; expiry gets its own
// error so clients know to re-authenticate rather than retry.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, verificationError(err))
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

func verificationError(err error) error {
	if errors.Is(err, jwtauth.ErrExpired) {
		return auth.ErrTokenExpired
	}
	return auth.ErrInvalidToken
}
