package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"petcare-hub/internal/platform/httpclient"
	"petcare-hub/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("identity client not configured")
	ErrUpstream      = errors.New("identity upstream error")
)

const (
	DefaultAPIKeyHeader = "X-Api-Key"
	verifyPath          = "/v1/tokens/verify"
)

// Config del proveedor de identidad hospedado.
type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa DefaultAPIKeyHeader.
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	http       *httpclient.Client
	configured bool
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	key := strings.TrimSpace(cfg.APIKey)

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = DefaultAPIKeyHeader
	}
	if key != "" {
		hc.Header.Set(header, key)
	}

	return &Client{
		http:       hc,
		configured: base != "" && key != "",
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.configured
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// VerifyToken pregunta al proveedor por el token y devuelve sus claims.
// 401/403 => auth.ErrUnauthorized; cualquier otro fallo => ErrUpstream.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrUnauthorized
	}

	var out verifyResponse
	err := c.http.DoJSON(ctx, http.MethodPost, verifyPath,
		map[string]string{"Authorization": "Bearer " + token},
		verifyRequest{Token: token}, &out)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return auth.Claims{}, auth.ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}

	return auth.Claims{
		UserID:      out.UserID,
		Email:       strings.TrimSpace(out.Email),
		DisplayName: strings.TrimSpace(out.DisplayName),
	}, nil
}

// CloseIdleConnections libera conexiones keep-alive (shutdown y tests).
func (c *Client) CloseIdleConnections() {
	if c != nil && c.http != nil && c.http.HTTP != nil {
		c.http.HTTP.CloseIdleConnections()
	}
}
