package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"projecthub-backend/internal/repository"
	"projecthub-backend/internal/token"
)

func newTestAuthService() (AuthService, *token.Manager) {
	tokens := token.NewManager([]byte("test-secret"), time.Hour)
	mem := repository.NewMemory()
	return NewAuthService(mem.Users(), tokens), tokens
}

func TestSignupThenLogin(t *testing.T) {
	auth, tokens := newTestAuthService()
	ctx := context.Background()

	signup, err := auth.Signup(ctx, SignupRequest{Username: "al", Email: "al@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if signup.User.ID == 0 {
		t.Fatal("expected a user id to be assigned")
	}
	if signup.User.Username != "al" || signup.User.Email != "al@x.com" {
		t.Fatalf("unexpected public fields: %+v", signup.User)
	}
	if signup.Token == "" {
		t.Fatal("expected a token")
	}

	login, err := auth.Login(ctx, LoginRequest{Email: "al@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != signup.User.ID {
		t.Fatalf("login resolved user %d, signup created %d", login.User.ID, signup.User.ID)
	}

	userID, err := tokens.Verify(login.Token)
	if err != nil {
		t.Fatalf("verify minted token: %v", err)
	}
	if userID != signup.User.ID {
		t.Fatalf("token bound to user %d, want %d", userID, signup.User.ID)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := auth.Signup(ctx, SignupRequest{Username: "al", Email: "al@x.com", Password: "pw123456"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := auth.Signup(ctx, SignupRequest{Username: "al2", Email: "al@x.com", Password: "other"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// The first account must still be the one that logs in.
	login, err := auth.Login(ctx, LoginRequest{Email: "al@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("login after duplicate signup: %v", err)
	}
	if login.User.Username != "al" {
		t.Fatalf("expected original user, got %q", login.User.Username)
	}
}

func TestSignupMissingFields(t *testing.T) {
	auth, _ := newTestAuthService()
	ctx := context.Background()

	cases := []SignupRequest{
		{Email: "a@x.com", Password: "pw"},
		{Username: "a", Password: "pw"},
		{Username: "a", Email: "a@x.com"},
	}
	for _, req := range cases {
		_, err := auth.Signup(ctx, req)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("request %+v: expected validation error, got %v", req, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := auth.Signup(ctx, SignupRequest{Username: "al", Email: "al@x.com", Password: "pw123456"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err := auth.Login(ctx, LoginRequest{Email: "al@x.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	auth, _ := newTestAuthService()

	_, err := auth.Login(context.Background(), LoginRequest{Email: "nobody@x.com", Password: "pw"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
