package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/greentouch-site/internal/auth"
	"github.com/spec-kit/greentouch-site/internal/config"
	"github.com/spec-kit/greentouch-site/internal/domain"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

const adminUserID = "1"

// AuthService guards the back office behind the single admin credential.
type AuthService struct {
	credential *auth.AdminCredential
	tokenMgr   *auth.TokenManager
	latency    *Latency
	logger     *zap.Logger
}

// NewAuthService builds the service, hashing the configured admin password.
func NewAuthService(cfg config.Config, latency *Latency, logger *zap.Logger) (*AuthService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	admin := domain.AdminUser{
		ID:    adminUserID,
		Email: cfg.Auth.AdminEmail,
		Name:  cfg.Auth.AdminName,
	}
	credential, err := auth.NewAdminCredential(admin, cfg.Auth.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		credential: credential,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.App.Name),
		latency:    latency,
		logger:     logger,
	}, nil
}

// Login authenticates the admin and returns a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AdminUser, string, error) {
	if err := s.latency.Wait(ctx, OpLogin); err != nil {
		return domain.AdminUser{}, "", err
	}
	if !s.credential.Verify(email, password) {
		s.logger.Warn("admin login rejected", zap.String("email", email))
		return domain.AdminUser{}, "", apperrors.NewInvalidCredentials()
	}

	user := s.credential.User()
	token, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return domain.AdminUser{}, "", apperrors.NewInternalError(err)
	}
	s.logger.Info("admin logged in", zap.String("email", email))
	return user, token, nil
}

// ChangePassword verifies the current password before replacing it.
// Issued tokens stay valid.
func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if err := s.latency.Wait(ctx, OpUpdate); err != nil {
		return err
	}
	if !s.credential.Verify(s.credential.User().Email, currentPassword) {
		return apperrors.NewInvalidCredentials()
	}
	if err := s.credential.SetPassword(newPassword); err != nil {
		return apperrors.NewValidationError("password cannot be used", map[string]any{"reason": err.Error()})
	}
	s.logger.Info("admin password changed")
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
