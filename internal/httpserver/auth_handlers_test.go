package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexloop/vocab_server/internal/service"
	"github.com/lexloop/vocab_server/internal/tokens"
	"github.com/lexloop/vocab_server/internal/transport"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("alice", "alice@example.com", "correct-password")

	rec := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "correct-password",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.JwtToken)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := tokens.ClaimsFromToken(resp.JwtToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, service.ClaimFromUser(user), claims.User)
	assert.NotContains(t, rec.Body.String(), user.PasswordHash)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("alice", "alice@example.com", "correct-password")

	recWrongPw := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	}, "")
	require.Equal(t, http.StatusUnauthorized, recWrongPw.Code)

	recUnknown := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "nobody",
		"password": "whatever",
	}, "")
	require.Equal(t, http.StatusUnauthorized, recUnknown.Code)

	// Identical body for both failure modes.
	assert.Equal(t, recWrongPw.Body.String(), recUnknown.Body.String())
}

func TestRefresh_Success(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("alice", "alice@example.com", "correct-password")
	token := env.tokenFor(user)

	rec := env.doJSON(http.MethodPost, "/api/auth/refresh", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.JwtToken)
	assert.Equal(t, "alice", resp.User.Username)

	claims, err := tokens.ClaimsFromToken(resp.JwtToken, testSecret)
	require.NoError(t, err)
	assert.Equal(t, service.ClaimFromUser(user), claims.User)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser("alice", "alice@example.com", "correct-password")

	expired, err := tokens.Issue(service.ClaimFromUser(user), testSecret, -time.Minute)
	require.NoError(t, err)

	rec := env.doJSON(http.MethodPost, "/api/auth/refresh", nil, expired)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "jwtToken")
}

func TestRefresh_GarbageToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/auth/refresh", nil, "garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
