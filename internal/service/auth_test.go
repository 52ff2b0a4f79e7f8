package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/potionstore/potionstore-go/internal/crypto"
	"github.com/potionstore/potionstore-go/internal/model"
	"github.com/potionstore/potionstore-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

// fakeUserStore serves a single fixed user by username.
type fakeUserStore struct {
	user *model.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	return nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.user == nil || f.user.Username != username {
		return nil, repository.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, repository.ErrUserNotFound
	}
	return f.user, nil
}

func newAuthServiceWithUser(t *testing.T, username, password string) *AuthService {
	t.Helper()

	hash, err := crypto.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	store := &fakeUserStore{user: &model.User{
		ID:           7,
		Username:     username,
		PasswordHash: hash,
	}}
	return NewAuthService(store, "test-secret", time.Hour)
}

func TestRegister_UsernameTooShort(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "ab",
		Password: "secret1",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || !strings.Contains(ve.Fields[0], "username") {
		t.Errorf("expected single username error, got %v", ve.Fields)
	}
}

func TestRegister_UsernameTooLong(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: strings.Repeat("a", 31),
		Password: "secret1",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRegister_PasswordTooShort(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "alex",
		Password: "12345",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || !strings.Contains(ve.Fields[0], "password") {
		t.Errorf("expected single password error, got %v", ve.Fields)
	}
}

func TestRegister_CollectsAllFieldErrors(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "ab",
		Password: "123",
	})

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %v", ve.Fields)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{Fields: []string{"a", "b"}}
	if ve.Error() != "a; b" {
		t.Errorf("unexpected error message: %q", ve.Error())
	}
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthServiceWithUser(t, "alex", "secret1")

	token, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "alex",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	claims, err := crypto.VerifySessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("VerifySessionToken() unexpected error: %v", err)
	}
	if claims.Username != "alex" {
		t.Errorf("token username = %q, want alex", claims.Username)
	}

	userID, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() unexpected error: %v", err)
	}
	if userID != 7 {
		t.Errorf("token user id = %d, want 7", userID)
	}
}

func TestLogin_UnknownUserAndWrongPasswordSameError(t *testing.T) {
	// An unknown username and a wrong password must be indistinguishable
	// to the caller.
	svc := newAuthServiceWithUser(t, "alex", "secret1")

	_, unknownErr := svc.Login(context.Background(), model.LoginRequest{
		Username: "nobody",
		Password: "secret1",
	})
	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("Login() unknown user error = %v, want ErrInvalidCredentials", unknownErr)
	}

	_, wrongErr := svc.Login(context.Background(), model.LoginRequest{
		Username: "alex",
		Password: "wrong-password",
	})
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("Login() wrong password error = %v, want ErrInvalidCredentials", wrongErr)
	}

	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("error messages differ: %q vs %q", unknownErr, wrongErr)
	}
}
