package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/plumeworks/plume/internal/database"
	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/pkg/jwt"
)

const bcryptCost = 12

// AuthUserRepository defines the user storage operations auth needs
type AuthUserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// AuthService handles registration, login and token validation
type AuthService struct {
	userRepo   AuthUserRepository
	jwtService *jwt.Service
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo   AuthUserRepository
	JWTService *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:   cfg.UserRepo,
		jwtService: cfg.JWTService,
	}
}

// Register creates a new account and returns the user with a fresh token.
// Username and email collisions surface through the storage layer's unique
// indexes, so concurrent signups cannot race past a lookup.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, string, error) {
	if err := validateRegistration(req); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}
	hashStr := string(hash)

	user := &model.User{
		Username:  strings.TrimSpace(req.Username),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Hash:      &hashStr,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Role:      model.UserRoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, "", ErrAccountExists
		}
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token. An
// unknown username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.Hash == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Hash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me returns the account behind a validated identity
func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// TokenExpiration returns how long issued tokens stay valid
func (s *AuthService) TokenExpiration() time.Duration {
	return s.jwtService.GetExpiration()
}

// ValidateAccessToken validates a bearer token and returns its claims.
// Middleware depends on this method rather than on the jwt package directly.
func (s *AuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}

func (s *AuthService) issueToken(user *model.User) (string, error) {
	return s.jwtService.Sign(jwt.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
}

func validateRegistration(req *model.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return ErrUsernameRequired
	}
	if len(username) > model.MaxUsernameLength {
		return ErrUsernameTooLong
	}

	email := strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}

	switch {
	case req.Password == "":
		return ErrPasswordRequired
	case len(req.Password) < model.MinPasswordLength:
		return ErrPasswordTooShort
	case len(req.Password) > model.MaxPasswordLength:
		return ErrPasswordTooLong
	}

	return nil
}
