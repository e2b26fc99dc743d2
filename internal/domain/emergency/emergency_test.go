package emergency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"petcare-hub/internal/ports/snapshot"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(
		snapshot.NewStatic([]Contact{{Name: "Animal Poison Control", Phone: "(888) 426-4435"}}),
		snapshot.NewStatic([]Tip{
			{Title: "CPR for Pets", Severity: SeverityCritical},
			{Title: "Bleeding Control", Severity: SeverityUrgent},
			{Title: "Poisoning", Severity: SeverityCritical},
		}),
	)
}

func TestService_Get(t *testing.T) {
	svc := newTestService()

	all, err := svc.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all.Contacts, 1)
	assert.Len(t, all.Tips, 3)

	critical, err := svc.Get(context.Background(), "CRITICAL")
	require.NoError(t, err)
	require.Len(t, critical.Tips, 2)
	assert.Equal(t, "Poisoning", critical.Tips[1].Title)

	_, err = svc.Get(context.Background(), "mild")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoutes_BadSeverity(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r, newTestService())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/emergency?severity=mild", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/emergency?severity=urgent", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Bleeding Control")
}
