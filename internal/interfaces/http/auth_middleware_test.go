package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/internal/application/auth"
	"github.com/jhoicas/carneiro-api/internal/application/dto"
	pkgjwt "github.com/jhoicas/carneiro-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "carneiro-api-test"
)

// signed firma un token para el fixture sin pasar por el login.
func signed(t *testing.T, userID, username, role string) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWTSecret, userID, username, role, testIssuer, 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

// Matriz de acceso por rol sobre las rutas reales del router.
func TestRouter_RoleMatrix(t *testing.T) {
	f := newAPI(t, 10)
	cases := []struct {
		method   string
		path     string
		operador int
		admin    int
	}{
		{http.MethodGet, "/api/products", http.StatusOK, http.StatusOK},
		{http.MethodGet, "/api/moves", http.StatusOK, http.StatusOK},
		{http.MethodGet, "/api/settings", http.StatusOK, http.StatusOK},
		{http.MethodGet, "/api/dashboard/summary", http.StatusOK, http.StatusOK},
		{http.MethodPatch, "/api/products/p-404/stock", http.StatusForbidden, http.StatusBadRequest},
		{http.MethodGet, "/api/data/export", http.StatusForbidden, http.StatusOK},
		{http.MethodPost, "/api/data/import", http.StatusForbidden, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := f.do(t, tc.method, tc.path, f.oper, []byte(`{}`))
			assert.Equal(t, tc.operador, resp.StatusCode, "operador")
			if tc.operador == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)
			}

			resp = f.do(t, tc.method, tc.path, f.admin, []byte(`{}`))
			assert.Equal(t, tc.admin, resp.StatusCode, "admin")
		})
	}
}

func TestRouter_RejectsBadTokens(t *testing.T) {
	f := newAPI(t, 10)
	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"sin header", "", http.StatusUnauthorized, ""},
		{"token malformado", "Bearer token.invalido.aqui", http.StatusUnauthorized, ""},
		{"token sin rol en ruta admin", signed(t, "op-legacy", "legado", ""), http.StatusUnauthorized, "MISSING_ROLE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := f.do(t, http.MethodGet, "/api/data/export", tc.header, nil)
			assert.Equal(t, tc.status, resp.StatusCode)
			if tc.code != "" {
				assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
			}
		})
	}
}

func TestRouter_ForeignSecretRejected(t *testing.T) {
	f := newAPI(t, 10)
	tok, _, err := pkgjwt.Generate("otro-segredo", "op-admin", "carneiro", auth.RoleAdmin, testIssuer, 60)
	require.NoError(t, err)

	resp := f.do(t, http.MethodGet, "/api/products", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ClaimsReachHandlers(t *testing.T) {
	f := newAPI(t, 10)

	resp := f.do(t, http.MethodGet, "/api/auth/me", signed(t, "op-noite", "gerente", auth.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	me := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "op-noite", me.ID)
	assert.Equal(t, "gerente", me.Username)
	assert.Equal(t, auth.RoleAdmin, me.Role)
}
