// Package services contains application services for the certkeeper client.
// This file defines the authentication service: login, registration, the
// startup session check and logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
	"github.com/dmitrijs2005/certkeeper/internal/common"
)

// SessionStore is the local side of the session: the persisted cookie jar.
type SessionStore interface {
	Reset(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login / Register: validate the pair locally, then call the backend.
//     Backend rejections are returned as-is so their message can be shown.
//   - CheckSession: check the session cookie, returning the user name.
//   - Logout: best-effort server logout, then always forget the local session.
//   - Close: release underlying client resources.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username string, password []byte) error
	CheckSession(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  SessionStore
}

// NewAuthService constructs an AuthService bound to the given API client and
// local session store. store may be nil when nothing is persisted.
func NewAuthService(client client.Client, store SessionStore) AuthService {
	return &authService{client: client, store: store}
}

func validateCreds(username string, password []byte) error {
	if common.IsBlank(username) || len(password) == 0 {
		return common.ErrMissingCredsPair
	}
	return nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	if err := validateCreds(username, password); err != nil {
		return err
	}
	if err := a.client.Login(ctx, username, password); err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if err := validateCreds(username, password); err != nil {
		return err
	}
	if err := a.client.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) CheckSession(ctx context.Context) (string, error) {
	info, err := a.client.CheckSession(ctx)
	if err != nil {
		return "", fmt.Errorf("session check: %w", err)
	}
	return info.User, nil
}

// Logout reports the server error, if any, joined with a failure to clear
// the local store. The local store is cleared either way.
func (a *authService) Logout(ctx context.Context) error {
	var serverErr, localErr error
	if err := a.client.Logout(ctx); err != nil {
		serverErr = fmt.Errorf("logout error: %w", err)
	}
	if a.store != nil {
		if err := a.store.Reset(ctx); err != nil {
			localErr = fmt.Errorf("clear session: %w", err)
		}
	}
	return errors.Join(serverErr, localErr)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
