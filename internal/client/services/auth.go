// Package services contains application services for the carswipe CLI.
// This file defines the authentication service: register, login with key
// unsealing, logout and the liveness check.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/client/client"
	"github.com/dmitrijs2005/carswipe/internal/client/keyring"
	"github.com/dmitrijs2005/carswipe/internal/client/models"
	"github.com/dmitrijs2005/carswipe/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; the server generates the key pair.
//   - Login: authenticate, obtain the sealed key envelope (server first,
//     local cache as fallback) and open it into a session key handle.
//   - Logout: forget the access token and wipe the handle.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, email, displayName string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) (*models.Session, *keyring.Handle, error)
	Logout(ctx context.Context, h *keyring.Handle)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// KeyCache is the subset of keyring.Cache used here.
type KeyCache interface {
	Put(email string, k *keyring.CachedKeys) error
	Get(email string) (*keyring.CachedKeys, error)
	Delete(email string) error
}

type authService struct {
	client client.Client
	cache  KeyCache
	now    func() time.Time
}

func NewAuthService(c client.Client, cache KeyCache) AuthService {
	return &authService{client: c, cache: cache, now: time.Now}
}

func (a *authService) Register(ctx context.Context, email, displayName string, password []byte) (string, error) {
	return a.client.Register(ctx, email, displayName, string(password))
}

// Login authenticates and unseals the user's secret key with password.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Session, *keyring.Handle, error) {
	sess, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, nil, fmt.Errorf("login error: %w", err)
	}

	km, err := a.keyMaterial(ctx, email, sess)
	if err != nil {
		a.client.Logout()
		return nil, nil, err
	}

	h, err := keyring.Open(sess.UserID, km.PublicKey, km.SealedSecretKey, password)
	if err != nil {
		a.client.Logout()
		return nil, nil, fmt.Errorf("open keys: %w", err)
	}
	return sess, h, nil
}

// keyMaterial fetches the sealed envelope and refreshes the cache. When the
// key endpoint is unreachable the cached copy for the same user is used.
func (a *authService) keyMaterial(ctx context.Context, email string, sess *models.Session) (*models.KeyMaterial, error) {
	km, err := a.client.GetOwnKeys(ctx)
	if err == nil {
		if km.UserID != sess.UserID {
			return nil, fmt.Errorf("%w: key material belongs to another user", common.ErrInvalidKeyMaterial)
		}
		if err := a.cache.Put(email, &keyring.CachedKeys{
			UserID:          km.UserID,
			DisplayName:     sess.DisplayName,
			PublicKey:       km.PublicKey,
			SealedSecretKey: km.SealedSecretKey,
			CachedAt:        a.now(),
		}); err != nil {
			return nil, fmt.Errorf("cache keys: %w", err)
		}
		return km, nil
	}

	if !errors.Is(err, client.ErrUnavailable) {
		return nil, fmt.Errorf("get keys: %w", err)
	}

	cached, cerr := a.cache.Get(email)
	if cerr != nil {
		return nil, fmt.Errorf("get keys: %w", err)
	}
	if cached.UserID != sess.UserID {
		// the email now belongs to another account
		_ = a.cache.Delete(email)
		return nil, fmt.Errorf("get keys: %w", err)
	}
	return &models.KeyMaterial{UserID: cached.UserID, PublicKey: cached.PublicKey, SealedSecretKey: cached.SealedSecretKey}, nil
}

func (a *authService) Logout(ctx context.Context, h *keyring.Handle) {
	a.client.Logout()
	if h != nil {
		h.Wipe()
	}
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
