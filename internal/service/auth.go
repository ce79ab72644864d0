package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estofados/outlet/internal/hash"
	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/models"
	"github.com/estofados/outlet/internal/mykafka"
	"github.com/estofados/outlet/internal/repo"
	"github.com/estofados/outlet/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
	Producer  *mykafka.Producer
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Register creates the user and hands back a signed token so the client is
// logged in right away. Duplicate emails fail with ErrConflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if in.Name == "" || in.Email == "" || in.Password == "" || in.Phone == "" {
		return nil, "", fmt.Errorf("name, email, password and phone are required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, "", err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: pwHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("register_conflict", "email", in.Email)
			return nil, "", fmt.Errorf("email already registered: %w", ErrConflict)
		}
		l.Error("register_error", "error", err)
		return nil, "", err
	}

	token, err := tokens.Sign(user.ID, s.TokenTTL, s.JWTSecret)
	if err != nil {
		l.Error("register_error", "reason", "cannot sign token", "error", err)
		return nil, "", err
	}

	s.publish(ctx, mykafka.TopicUserEvents, user.ID, map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("user registered", "user_id", user.ID)
	return &user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password come back as the same ErrUnauthenticated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, "", ErrUnauthenticated
	}

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if repo.IsNotFound(err) {
			l.Warn("login failed", "reason", "unknown email")
			return nil, "", ErrUnauthenticated
		}
		l.Error("login failed", "error", err)
		return nil, "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, "", ErrUnauthenticated
	}

	token, err := tokens.Sign(user.ID, s.TokenTTL, s.JWTSecret)
	if err != nil {
		l.Error("login failed", "reason", "cannot sign token", "error", err)
		return nil, "", err
	}

	s.publish(ctx, mykafka.TopicUserEvents, user.ID, map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
	})

	return user, token, nil
}

// ResolveToken turns a bearer token into the caller's user record. Every
// failure mode — bad signature, expiry, malformed input, vanished subject —
// collapses into ErrUnauthenticated so the response never reveals which
// check tripped.
func (s *AuthService) ResolveToken(ctx context.Context, tokenStr string) (*models.User, error) {
	claims, err := tokens.AccessClaimsFromToken(tokenStr, s.JWTSecret)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.Repo.UserByID(ctx, claims.Subject)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) UserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Repo.UserByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
