package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estofados/outlet/internal/tokens"
)

func registerInput(email string) RegisterInput {
	return RegisterInput{
		Name:     "Maria Teste",
		Email:    email,
		Password: "Secret123",
		Phone:    "+55 21 99999-0000",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, token, err := env.Auth.Register(ctx, registerInput("maria@example.com"))
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, token)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.False(t, user.IsAdmin)

	stored, err := env.Auth.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	// The API-facing payload must never carry the plaintext or the hash.
	payload, err := json.Marshal(stored)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "Secret123")
	assert.NotContains(t, string(payload), stored.PasswordHash)

	claims, err := tokens.AccessClaimsFromToken(token, env.Auth.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.Auth.Register(ctx, registerInput("dup@example.com"))
	require.NoError(t, err)

	_, _, err = env.Auth.Register(ctx, registerInput("dup@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Register_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{name: "empty email", in: RegisterInput{Name: "a", Password: "b", Phone: "c"}},
		{name: "empty password", in: RegisterInput{Name: "a", Email: "a@b.c", Phone: "c"}},
		{name: "empty name", in: RegisterInput{Email: "a@b.c", Password: "b", Phone: "c"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.Auth.Register(ctx, tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.Auth.Register(ctx, registerInput("login@example.com"))
	require.NoError(t, err)

	user, token, err := env.Auth.Login(ctx, "login@example.com", "Secret123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)

	_, _, err = env.Auth.Login(ctx, "login@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, _, err = env.Auth.Login(ctx, "unknown@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_ResolveToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, token, err := env.Auth.Register(ctx, registerInput("resolve@example.com"))
	require.NoError(t, err)

	resolved, err := env.Auth.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestAuthService_ResolveToken_UniformFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, _, err := env.Auth.Register(ctx, registerInput("gone@example.com"))
	require.NoError(t, err)

	expired, err := tokens.Sign(user.ID, 0, env.Auth.JWTSecret)
	require.NoError(t, err)

	forged, err := tokens.Sign(user.ID, time.Hour, []byte("attacker-secret"))
	require.NoError(t, err)

	orphan, err := tokens.Sign("no-such-user", time.Hour, env.Auth.JWTSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "forged", token: forged},
		{name: "unknown subject", token: orphan},
		{name: "garbage", token: "garbage"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := env.Auth.ResolveToken(ctx, tt.token)
			require.Error(t, err)
			assert.Nil(t, resolved)
			// Every failure mode is the same outward error.
			assert.ErrorIs(t, err, ErrUnauthenticated)
		})
	}
}
