package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petcare-hub/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newProvider(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != verifyPath || r.Header.Get("X-Partner-Key") != "k1" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		var in verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		switch in.Token {
		case "good":
			_ = json.NewEncoder(w).Encode(verifyResponse{UserID: " u-1 ", Email: "ana@example.com", DisplayName: "Ana"})
		case "anon":
			_ = json.NewEncoder(w).Encode(verifyResponse{})
		case "boom":
			http.Error(w, "down", http.StatusBadGateway)
		default:
			http.Error(w, "invalid token", http.StatusUnauthorized)
		}
	}))
}

func TestVerifier(t *testing.T) {
	ts := newProvider(t)
	defer ts.Close()

	c, err := NewClient(Config{BaseURL: ts.URL, APIKey: "k1", APIKeyHeader: "X-Partner-Key"})
	require.NoError(t, err)
	defer c.CloseIdleConnections()
	v := NewVerifier(c)
	ctx := context.Background()

	claims, err := v.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: "u-1", Email: "ana@example.com", DisplayName: "Ana"}, claims)

	_, err = v.Verify(ctx, "expired")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = v.Verify(ctx, "  ")
	assert.ErrorIs(t, err, auth.ErrUnauthorized)

	_, err = v.Verify(ctx, "boom")
	assert.ErrorIs(t, err, ErrUpstream)

	_, err = v.Verify(ctx, "anon")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestClient_NotConfigured(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://identity.local"})
	require.NoError(t, err)
	assert.False(t, c.IsConfigured())

	_, err = NewVerifier(c).Verify(context.Background(), "good")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier(nil).Verify(context.Background(), "good")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{BaseURL: "::bad"})
	assert.Error(t, err)
}
