package service

import (
	"context"
	"errors"
	"fmt"

	"projecthub-backend/internal/domain"
	"projecthub-backend/internal/repository"
	"projecthub-backend/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to password digests.
const bcryptCost = 10

// SignupRequest holds the data needed to register a new user
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds the credentials presented at login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user. It never carries the
// password digest.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse pairs the public user fields with a freshly minted token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// AuthService verifies and creates credentials and issues bearer tokens.
type AuthService interface {
	// Signup registers a new user and returns the user with a token.
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)

	// Login checks credentials against the stored digest and returns the
	// user with a token.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Manager
}

// NewAuthService creates a new instance of authService.
func NewAuthService(users repository.UserRepository, tokens *token.Manager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	if req.Username == "" {
		return nil, validationf("Username is required")
	}
	if req.Email == "" {
		return nil, validationf("Email is required")
	}
	if req.Password == "" {
		return nil, validationf("Password is required")
	}

	_, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("user %w", ErrAlreadyExists)
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("look up email: %w", err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(digest),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.respond(user)
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationf("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, fmt.Errorf("look up email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

func (s *authService) respond(user *domain.User) (*AuthResponse, error) {
	tok, err := s.tokens.Mint(user.ID)
	if err != nil {
		return nil, fmt.Errorf("mint token: %w", err)
	}
	return &AuthResponse{
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: tok,
	}, nil
}
