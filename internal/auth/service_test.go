package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portfolio-cms/portfolio-cms/internal/db/models"
)

type stubUserLookup struct {
	user *models.User
	err  error
}

func (s *stubUserLookup) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.user, s.err
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &models.User{ID: 1, Username: "admin", PasswordHash: hash}
}

func TestLoginSuccess(t *testing.T) {
	resetJWTSecret()
	t.Setenv("PFB_JWT_SECRET", "test-jwt-secret-that-is-32-chars-!")

	svc := NewService(&stubUserLookup{user: testUser(t, "correct horse battery")}, time.Hour)
	result, err := svc.Login(context.Background(), "admin", "correct horse battery")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if result == nil {
		t.Fatal("Login() returned nil for valid credentials")
	}
	if result.User.Username != "admin" || result.User.ID != 1 {
		t.Errorf("unexpected user view: %+v", result.User)
	}

	claims := VerifyToken(result.Token)
	if claims == nil {
		t.Fatal("issued token failed verification")
	}
	if claims.UserID != 1 || claims.Username != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestLoginFailuresAreUniform(t *testing.T) {
	resetJWTSecret()
	t.Setenv("PFB_JWT_SECRET", "test-jwt-secret-that-is-32-chars-!")

	wrongPassword := NewService(&stubUserLookup{user: testUser(t, "the real password")}, time.Hour)
	unknownUser := NewService(&stubUserLookup{}, time.Hour)

	r1, err1 := wrongPassword.Login(context.Background(), "admin", "not the password")
	r2, err2 := unknownUser.Login(context.Background(), "nobody", "not the password")

	if err1 != nil || err2 != nil {
		t.Fatalf("bad credentials must not be errors: %v, %v", err1, err2)
	}
	if r1 != nil || r2 != nil {
		t.Errorf("expected nil results, got %+v and %+v", r1, r2)
	}
}

func TestLoginStoreError(t *testing.T) {
	svc := NewService(&stubUserLookup{err: errors.New("connection refused")}, time.Hour)
	result, err := svc.Login(context.Background(), "admin", "whatever pass")
	if err == nil {
		t.Fatal("expected store error to propagate")
	}
	if result != nil {
		t.Errorf("expected nil result on store error, got %+v", result)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword("hunter2hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("wrong password accepted")
	}
}
