package auth

import (
	"context"
	"errors"
)

// ErrUnauthorized indica token inválido, vencido o revocado.
var ErrUnauthorized = errors.New("unauthorized")

// AuthVerifier verifica un bearer token contra el proveedor de identidad.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
