package service

import (
	"context"
	"errors"
	"time"

	"github.com/lexloop/vocab_server/internal/logging"
	"github.com/lexloop/vocab_server/internal/models"
	"github.com/lexloop/vocab_server/internal/mykafka"
	"github.com/lexloop/vocab_server/internal/repo"
	"github.com/lexloop/vocab_server/internal/tokens"
)

var ErrValidation = errors.New("validation error")
var ErrInvalidCredentials = repo.ErrInvalidCredentials

type AuthService struct {
	Repo      *repo.GormRepo
	Producer  *mykafka.Producer
	JWTSecret []byte
	TokenTTL  time.Duration
}

func ClaimFromUser(u *models.User) tokens.UserClaim {
	return tokens.UserClaim{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
	}
}

// Login trades credentials for a signed token. Unknown username and
// wrong password surface as the same ErrInvalidCredentials; anything
// else is an infrastructure failure and is passed through untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return "", nil, ErrValidation
	}

	user, err := s.Repo.UserByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401, "reason", "invalid username or password")
			return "", nil, ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return "", nil, err
	}

	token, err := tokens.Issue(ClaimFromUser(user), s.JWTSecret, s.TokenTTL)
	if err != nil {
		l.Error("login_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return "", nil, err
	}

	if err := s.Producer.PublishEvent(ctx, "user_events", user.ID.String(), map[string]any{
		"type":     "user_logged_in",
		"username": user.Username,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	l.Info("login_successful")
	return token, user, nil
}

// Renew issues a fresh token for an identity the middleware already
// verified. Sliding expiry: the password is not re-checked and the old
// token stays valid until it expires on its own.
func (s *AuthService) Renew(ctx context.Context, claim tokens.UserClaim) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.renew", "username", claim.Username)

	token, err := tokens.Issue(claim, s.JWTSecret, s.TokenTTL)
	if err != nil {
		l.Error("renew_failed", "status", 500, "reason", "cannot sign token", "error", err)
		return "", err
	}

	l.Info("renew_successful")
	return token, nil
}
