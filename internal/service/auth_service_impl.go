package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mariechen/ticked/internal/auth"
	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/repository"
)

var (
	// ErrValidation indicates signup input that fails basic checks.
	ErrValidation = errors.New("invalid signup input")

	// ErrEmailTaken indicates the email already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password
	// so login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const minPasswordLen = 6

type authService struct {
	users  repository.UserRepo
	tokens *auth.TokenManager
	now    func() time.Time
}

func NewAuthService(users repository.UserRepo, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens, now: func() time.Time { return time.Now().UTC() }}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) VerifyToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}
