package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma un token para las claims dadas.
type TokenIssuer interface {
	Issue(claims Claims) (string, error)
}

// TokenService es lo que necesita el router: emitir (verify) y verificar (rutas protegidas).
type TokenService interface {
	AuthVerifier
	TokenIssuer
}
