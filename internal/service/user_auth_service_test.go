package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/northwear-shop/internal/config"
	"github.com/northwear-shop/internal/constants"
	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newUserAuthFixture(t *testing.T, name string) *UserAuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "user-auth-service-test-secret"
	cfg.JWT.ExpireHours = 24
	cfg.Security.PasswordPolicy.MinLength = 6
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserAuthFixture(t, "user_auth_register")

	user, err := svc.Register(RegisterInput{
		Email:     "Buyer@Example.com",
		Password:  "secret123",
		FirstName: "Anna",
		LastName:  "Holm",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "buyer@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Role != constants.RoleCustomer {
		t.Fatalf("expected customer role, got %q", user.Role)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatalf("expected hashed password")
	}

	logged, token, _, err := svc.Login("buyer@example.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected same user, got %d vs %d", logged.ID, user.ID)
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email || claims.Role != constants.RoleCustomer {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserAuthFixture(t, "user_auth_dup")

	if _, err := svc.Register(RegisterInput{Email: "buyer@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := svc.Register(RegisterInput{Email: "buyer@example.com", Password: "secret456"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got: %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := newUserAuthFixture(t, "user_auth_weak")

	_, err := svc.Register(RegisterInput{Email: "buyer@example.com", Password: "123"})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got: %v", err)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	svc := newUserAuthFixture(t, "user_auth_badmail")

	for _, email := range []string{"", "not-an-email", "buyer@"} {
		_, err := svc.Register(RegisterInput{Email: email, Password: "secret123"})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("email %q: expected ErrInvalidEmail, got: %v", email, err)
		}
	}
}

func TestLoginDistinguishesUnknownEmailFromWrongPassword(t *testing.T) {
	svc := newUserAuthFixture(t, "user_auth_login_err")

	if _, err := svc.Register(RegisterInput{Email: "buyer@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, _, err := svc.Login("nobody@example.com", "secret123")
	if !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got: %v", err)
	}

	_, _, _, err = svc.Login("buyer@example.com", "wrongpass")
	if !errors.Is(err, ErrPasswordIncorrect) {
		t.Fatalf("expected ErrPasswordIncorrect, got: %v", err)
	}
}
