package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) *jwtauth.JWTAuth {
	t.Helper()
	return jwtauth.New("HS256", []byte("test-secret"), nil)
}

func signToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) string {
	t.Helper()
	_, tokenString, err := ja.Encode(claims)
	require.NoError(t, err)
	return tokenString
}

func protectedRequest(ja *jwtauth.JWTAuth, token string, extra ...func(http.Handler) http.Handler) *httptest.ResponseRecorder {
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	for i := len(extra) - 1; i >= 0; i-- {
		handler = extra[i](handler)
	}
	handler = jwtauth.Verifier(ja)(AuthRequired(ja)(handler))

	req := httptest.NewRequest(http.MethodGet, "/shifts", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	ja := newTestAuth(t)
	token := signToken(t, ja, map[string]interface{}{
		"type":        "access",
		"employee_id": "emp-001",
		"role":        "employee",
	})

	rec := protectedRequest(ja, token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	ja := newTestAuth(t)

	rec := protectedRequest(ja, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	ja := newTestAuth(t)
	token := signToken(t, ja, map[string]interface{}{
		"type":        "access",
		"employee_id": "emp-001",
		"exp":         time.Now().Add(-1 * time.Hour),
	})

	rec := protectedRequest(ja, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestAuthRequired_RejectsNonAccessToken(t *testing.T) {
	ja := newTestAuth(t)
	token := signToken(t, ja, map[string]interface{}{
		"type":        "refresh",
		"employee_id": "emp-001",
	})

	rec := protectedRequest(ja, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	ja := newTestAuth(t)

	adminToken := signToken(t, ja, map[string]interface{}{
		"type":        "access",
		"employee_id": "admin-001",
		"role":        "admin",
	})
	rec := protectedRequest(ja, adminToken, AdminOnly)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	staffToken := signToken(t, ja, map[string]interface{}{
		"type":        "access",
		"employee_id": "emp-001",
		"role":        "employee",
	})
	rec = protectedRequest(ja, staffToken, AdminOnly)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
