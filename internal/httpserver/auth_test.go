package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEndpoints_RegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Maria",
		"email":    "maria@example.com",
		"password": "senha-secreta",
		"phone":    "(11) 98888-0000",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "maria@example.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "senha-secreta")
	assert.NotContains(t, rec.Body.String(), "password_hash")

	rec = ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "maria@example.com",
		"password": "senha-secreta",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decodeBody(t, rec)["access_token"])
}

func TestAuthEndpoints_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "maria@example.com")

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Outra Maria",
		"email":    "maria@example.com",
		"password": "outra-senha",
		"phone":    "(11) 97777-0000",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "conflict", decodeBody(t, rec)["kind"])
}

func TestAuthEndpoints_LoginFailuresAreUniform(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "maria@example.com")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "wrong password", payload: map[string]any{"email": "maria@example.com", "password": "errada"}},
		{name: "unknown email", payload: map[string]any{"email": "ninguem@example.com", "password": "senha-secreta"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/auth/login", "", tt.payload)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "unauthenticated", body["kind"])
			assert.Equal(t, "invalid credentials", body["detail"])
		})
	}
}

func TestAuthEndpoints_BearerRequired(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, "/api/cart", tt.token, nil)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthenticated", decodeBody(t, rec)["kind"])
		})
	}
}
