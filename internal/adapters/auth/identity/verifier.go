package identity

import (
	"context"
	"fmt"
	"strings"

	"petcare-hub/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier contra el proveedor hospedado.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("identity verify: %w", err)
	}
	return claims, nil
}

var _ auth.AuthVerifier = (*Verifier)(nil)
