package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserClaim is the public projection of a user embedded in every token.
// It must never carry the password hash.
type UserClaim struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
}

type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the claim, subject = username,
// exp = now + ttl. HS256 with a single process-wide secret: issuer and
// verifier are the same process.
func Issue(claim UserClaim, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		User: claim,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claim.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ClaimsFromToken verifies the signature and expiry and returns the
// embedded claims. Callers can distinguish jwt.ErrTokenExpired from
// signature failures with errors.Is, but the HTTP layer maps both to
// the same 401.
func ClaimsFromToken(tokenStr string, secret []byte) (*Claims, error) {
	var claims Claims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims, nil
}
