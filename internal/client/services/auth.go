// Package services contains application services for the bowlsignup client:
// admin sign-in backed by the session store, the sign-up submission flow and
// the admin list operations.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bowlsignup/internal/client/client"
	"github.com/dmitrijs2005/bowlsignup/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bowlsignup/internal/client/router"
	"github.com/dmitrijs2005/bowlsignup/internal/common"
	"github.com/dmitrijs2005/bowlsignup/internal/logging"
)

// Session store keys.
const (
	KeyAdminAuthenticated = "is_admin_authenticated"
	KeyAccessToken        = "access_token"
)

// AuthService defines the admin session operations for the CLI.
//
// Contract:
//   - Login: verify the admin password with the server and persist the session.
//   - Restore: read the persisted session and hand its token to the client.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, password []byte) error
	Restore(ctx context.Context) (router.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	repo   metadata.Repository
	logger logging.Logger
}

func NewAuthService(client client.Client, repo metadata.Repository, logger logging.Logger) AuthService {
	return &authService{client: client, repo: repo, logger: logger.With("module", "auth")}
}

// Login exchanges password for an access token and stores the admin flag
// and the token. The password slice is wiped before returning.
func (a *authService) Login(ctx context.Context, password []byte) error {
	defer common.WipeByteArray(password)

	token, err := a.client.Login(ctx, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.repo.Set(ctx, KeyAccessToken, []byte(token)); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	if err := a.repo.Set(ctx, KeyAdminAuthenticated, []byte("true")); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	a.logger.Info(ctx, "admin signed in")
	return nil
}

// Restore returns the persisted session. A session counts as authenticated
// only when both the flag and a token are present.
func (a *authService) Restore(ctx context.Context) (router.Session, error) {
	flag, err := a.repo.Get(ctx, KeyAdminAuthenticated)
	if err != nil {
		return router.Session{}, err
	}
	token, err := a.repo.Get(ctx, KeyAccessToken)
	if err != nil {
		return router.Session{}, err
	}

	if string(flag) != "true" || len(token) == 0 {
		return router.Session{}, nil
	}

	a.client.SetAccessToken(string(token))
	return router.Session{Authenticated: true}, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
