package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarros/agenda-servicos/backend/internal/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAdminAuth_ValidToken(t *testing.T) {
	encoded, err := middleware.HashToken("segredo-forte")
	require.NoError(t, err)

	h := middleware.NewAdminAuth(encoded)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/migration", nil)
	req.Header.Set("Authorization", "Bearer segredo-forte")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_WrongToken(t *testing.T) {
	encoded, err := middleware.HashToken("segredo-forte")
	require.NoError(t, err)

	h := middleware.NewAdminAuth(encoded)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/migration", nil)
	req.Header.Set("Authorization", "Bearer chute")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	encoded, err := middleware.HashToken("segredo-forte")
	require.NoError(t, err)

	h := middleware.NewAdminAuth(encoded)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/migration", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
}

func TestAdminAuth_EmptyHashDisablesCheck(t *testing.T) {
	h := middleware.NewAdminAuth("")(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/migration", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
