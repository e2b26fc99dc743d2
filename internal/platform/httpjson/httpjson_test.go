package httpjson

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Max","extra":1}`))
	var p payload
	assert.Error(t, Decode(httptest.NewRecorder(), r, &p))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Max"}`))
	require.NoError(t, Decode(httptest.NewRecorder(), r, &p))
	assert.Equal(t, "Max", p.Name)
}

func TestDecode_StopsAtMaxBodyBytes(t *testing.T) {
	big := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))

	var p payload
	err := Decode(httptest.NewRecorder(), r, &p)
	var tooLarge *http.MaxBytesError
	require.True(t, errors.As(err, &tooLarge), "got %v", err)
	assert.EqualValues(t, MaxBodyBytes, tooLarge.Limit)
}

func TestWrite_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusCreated, payload{Name: "Luna"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Luna"}`, rec.Body.String())
}
