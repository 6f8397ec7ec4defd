package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/greentouch-site/internal/domain"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

var admin = domain.AdminUser{ID: "1", Email: "admin@greentouch.com", Name: "Admin User"}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "greentouch")
	token, err := tm.GenerateToken(admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "1" || claims.Email != admin.Email || claims.Name != admin.Name {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("tokens must not expire")
	}
	if claims.ID == "" {
		t.Fatalf("expected token id")
	}
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	tm := NewTokenManager("secret", "greentouch")
	other := NewTokenManager("other-secret", "greentouch")

	token, _ := other.GenerateToken(admin)
	if _, err := tm.ParseToken(token); err == nil {
		t.Fatalf("expected signature error")
	}

	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := tm.ParseToken(unsigned); err == nil {
		t.Fatalf("expected rejection of unsigned token")
	}
	if _, err := tm.ParseToken("garbage"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestAdminCredential(t *testing.T) {
	cred, err := NewAdminCredential(admin, "admin123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cred.Verify("admin@greentouch.com", "admin123") {
		t.Fatalf("expected credential match")
	}
	if cred.Verify("admin@greentouch.com", "wrong") {
		t.Fatalf("wrong password accepted")
	}
	if cred.Verify("ADMIN@greentouch.com", "admin123") {
		t.Fatalf("email must match exactly")
	}

	if err := cred.SetPassword("n3w-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cred.Verify("admin@greentouch.com", "admin123") || !cred.Verify("admin@greentouch.com", "n3w-secret") {
		t.Fatalf("password change not applied")
	}
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("secret", "greentouch")
	mw := NewAuthMiddleware(tm)
	token, _ := tm.GenerateToken(admin)

	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
	}})
	app.Get("/private", mw.Handle, func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(p.User.Email)
	})
	app.Get("/public", mw.Optional, func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); ok {
			return c.SendString("admin")
		}
		return c.SendString("anonymous")
	})

	cases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/private", "", http.StatusUnauthorized},
		{"wrong scheme", "/private", "Basic abc", http.StatusUnauthorized},
		{"bad token", "/private", "Bearer nope", http.StatusUnauthorized},
		{"valid", "/private", "Bearer " + token, http.StatusOK},
		{"optional anonymous", "/public", "", http.StatusOK},
		{"optional bad token", "/public", "Bearer nope", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}
