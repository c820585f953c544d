package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/cryptox"
	"github.com/dmitrijs2005/bowlsignup/internal/logging"
	"github.com/dmitrijs2005/bowlsignup/internal/server/auth"
	"github.com/dmitrijs2005/bowlsignup/internal/server/config"
)

// AdminService verifies the admin password and mints access tokens.
type AdminService struct {
	verifier                    *cryptox.PasswordVerifier
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

// NewAdminService keeps only a salted verifier of cfg.AdminPassword.
func NewAdminService(cfg *config.Config, logger logging.Logger) *AdminService {
	password := []byte(cfg.AdminPassword)
	defer common.WipeByteArray(password)

	return &AdminService{
		verifier:                    cryptox.NewPasswordVerifier(password),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		logger:                      logger.With("module", "admin"),
	}
}

// Login returns an access token when password matches, otherwise
// common.ErrorUnauthorized.
func (s *AdminService) Login(ctx context.Context, password []byte) (string, error) {
	if !s.verifier.Check(password) {
		s.logger.Warn(ctx, "admin login rejected")
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(auth.AdminSubject, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	s.logger.Info(ctx, "admin logged in")
	return token, nil
}

// Authorize checks an access token and returns its subject.
func (s *AdminService) Authorize(token string) (string, error) {
	return auth.SubjectFromToken(token, s.jwtSecret)
}
