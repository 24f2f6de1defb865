package tokens

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func testClaim() UserClaim {
	return UserClaim{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Name:     "Alice",
	}
}

func TestIssue_RoundTrip(t *testing.T) {
	t.Parallel()

	claim := testClaim()
	token, err := Issue(claim, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ClaimsFromToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, claim, claims.User)
	assert.Equal(t, claim.Username, claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 5*time.Second)
}

func TestClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := Issue(testClaim(), testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token, testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := Issue(testClaim(), []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	claims, err := ClaimsFromToken(token, testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestClaimsFromToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	claim := testClaim()
	token, err := Issue(claim, testSecret, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))
	user := body["user"].(map[string]any)
	user["username"] = "mallory"
	body["sub"] = "mallory"

	forged, err := json.Marshal(body)
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	claims, err := ClaimsFromToken(strings.Join(parts, "."), testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestClaimsFromToken_Garbage(t *testing.T) {
	t.Parallel()

	claims, err := ClaimsFromToken("garbage", testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
}
