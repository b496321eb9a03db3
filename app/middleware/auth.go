package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "catatan/app/jwt"
	"catatan/app/services"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct {
	Signer   *jwtutil.Signer
	Sessions *services.SessionService
}

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.Parse(token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if a.Sessions != nil && a.Sessions.IsRevoked(r.Context(), claims.ID) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
