package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lexloop/vocab_server/internal/hash"
	"github.com/lexloop/vocab_server/internal/logging"
	"github.com/lexloop/vocab_server/internal/models"
	"github.com/lexloop/vocab_server/internal/mykafka"
	"github.com/lexloop/vocab_server/internal/repo"
	"github.com/lexloop/vocab_server/internal/transport"
)

var ErrUserAlreadyExist = repo.ErrUserAlreadyExist

type UserService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

func validateNewUser(req transport.CreateUserRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrValidation)
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	return nil
}

func (s *UserService) Register(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register", "username", req.Username)

	if err := validateNewUser(req); err != nil {
		l.Warn("register_failed", "status", 400, "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_failed", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: pwHash,
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_failed", "status", 400, "reason", "user already exist")
			return nil, ErrUserAlreadyExist
		}
		l.Error("register_failed", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, "user_events", user.ID.String(), map[string]any{
		"type":     "user_registered",
		"username": user.Username,
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	l.Info("register_successful")
	return user, nil
}
