package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/greentouch-site/internal/config"
	"github.com/spec-kit/greentouch-site/internal/domain"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := config.Config{
		App: config.AppConfig{Name: "greentouch-test"},
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			BcryptCost:    bcrypt.MinCost,
			AdminEmail:    "admin@greentouch.com",
			AdminPassword: "admin123",
			AdminName:     "Admin User",
		},
	}
	svc, err := NewAuthService(cfg, NoLatency(), nil)
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return svc
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, "admin@greentouch.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	want := domain.AdminUser{ID: "1", Email: "admin@greentouch.com", Name: "Admin User"}
	if user != want {
		t.Fatalf("expected %+v, got %+v", want, user)
	}
	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.Subject != "1" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}

	_, second, err := svc.Login(ctx, "admin@greentouch.com", "admin123")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if second == token {
		t.Fatalf("each login should issue a distinct token")
	}
}

func TestAuthService_LoginRejectsWrongCredentials(t *testing.T) {
	svc := newTestAuthService(t)
	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "admin@greentouch.com", "nope"},
		{"wrong email", "other@greentouch.com", "admin123"},
		{"email case differs", "Admin@greentouch.com", "admin123"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, token, err := svc.Login(context.Background(), tc.email, tc.password)
			if !apperrors.HasCode(err, apperrors.CodeInvalidCredentials) {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
			if token != "" {
				t.Fatalf("no token expected on failure")
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "wrong", "newpass1")
	if !apperrors.HasCode(err, apperrors.CodeInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	if err := svc.ChangePassword(ctx, "admin123", "newpass1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "admin@greentouch.com", "admin123"); err == nil {
		t.Fatalf("old password should no longer work")
	}
	if _, _, err := svc.Login(ctx, "admin@greentouch.com", "newpass1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
