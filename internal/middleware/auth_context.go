package middleware

import (
	"context"
	"net/http"
	"strings"

	"animal-training-api/internal/platform/httpjson"
	"animal-training-api/internal/platform/logger"
	"animal-training-api/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const (
	MsgTokenMissing = "Access denied, token missing."
	MsgInvalidToken = "Invalid token."
)

// RequireAuth corta el request si no hay token válido:
// - sin token => 401
// - token que no verifica (firma, expirado, malformado) => 403
// Con token válido deja las claims en el contexto.
func RequireAuth(verifier auth.AuthVerifier, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				httpjson.Error(w, http.StatusUnauthorized, MsgTokenMissing)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				if log != nil {
					log.Debug("token rejected", map[string]any{"err": err, "path": r.URL.Path})
				}
				httpjson.Error(w, http.StatusForbidden, MsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// bearerToken devuelve lo que sigue al primer espacio del header y antes del
// siguiente. El esquema ("Bearer") no se valida.
func bearerToken(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
