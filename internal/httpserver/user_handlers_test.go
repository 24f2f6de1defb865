package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexloop/vocab_server/internal/models"
	"github.com/lexloop/vocab_server/internal/transport"
)

func TestCreateUser_Success(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/user", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"username": "alice",
		"password": "Secret123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.NotEmpty(t, resp.ID)

	// The projection never carries the password in any form.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "Secret123")

	var stored models.User
	require.NoError(t, env.DB.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "Secret123", stored.PasswordHash)
}

func TestCreateUser_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.createUser("alice", "alice@example.com", "Secret123")

	rec := env.doJSON(http.MethodPost, "/api/user", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "Secret123",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_Invalid(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/user", map[string]string{
		"email":    "not-an-email",
		"username": "alice",
		"password": "Secret123",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
