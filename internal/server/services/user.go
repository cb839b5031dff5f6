// Package services contains server-side business logic: account creation
// with key issuance, login, key custody and encrypted thread bookkeeping.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/carswipe/internal/boxcrypto"
	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/cryptox"
	"github.com/dmitrijs2005/carswipe/internal/dbx"
	"github.com/dmitrijs2005/carswipe/internal/server/auth"
	"github.com/dmitrijs2005/carswipe/internal/server/config"
	"github.com/dmitrijs2005/carswipe/internal/server/metrics"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const (
	minPasswordLength    = 8
	maxDisplayNameLength = 64
)

// AccessToken is the result of a successful login.
type AccessToken struct {
	Token       string
	ExpiresAt   time.Time
	UserID      string
	DisplayName string
}

// UserService handles registration (with key pair issuance) and login.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	metrics                     *metrics.Metrics
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration

	// seams for tests
	entropy       io.Reader
	hashPassword  func(password []byte) ([]byte, error)
	sealSecretKey func(secret, password []byte) ([]byte, error)
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, mx *metrics.Metrics) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		metrics:                     mx,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		hashPassword:                cryptox.HashPassword,
		sealSecretKey:               cryptox.SealSecretKey,
	}
}

// Register creates the account and its key pair in one transaction. The
// secret key is sealed under the password before it is stored, and the
// plaintext secret is wiped before returning. No user row can exist without
// a complete key pair.
func (s *UserService) Register(ctx context.Context, email, displayName, password string) (*models.User, error) {
	email, displayName, err := validateRegistration(email, displayName, password)
	if err != nil {
		return nil, err
	}

	hash, err := s.hashPassword([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		kp, err := boxcrypto.GenerateKeyPair(s.entropy)
		if err != nil {
			return err
		}
		defer kp.Wipe()

		sealed, err := s.sealSecretKey(kp.Secret[:], []byte(password))
		if err != nil {
			return fmt.Errorf("seal secret key: %w", err)
		}

		user, err = s.repomanager.Users(tx).Create(ctx, &models.User{
			ID:              uuid.NewString(),
			Email:           email,
			DisplayName:     displayName,
			PasswordHash:    string(hash),
			PublicKey:       kp.Public.String(),
			SealedSecretKey: sealed,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.KeyPairGenerated()
	return user, nil
}

// Login verifies the password and mints an access token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AccessToken, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !cryptox.CheckPassword([]byte(user.PasswordHash), []byte(password)) {
		return nil, common.ErrorUnauthorized
	}

	token, expiresAt, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AccessToken{Token: token, ExpiresAt: expiresAt, UserID: user.ID, DisplayName: user.DisplayName}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email, displayName, password string) (string, string, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "", fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" || utf8.RuneCountInString(displayName) > maxDisplayNameLength {
		return "", "", fmt.Errorf("%w: display name must be 1..%d characters", common.ErrorValidation, maxDisplayNameLength)
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		return "", "", fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, minPasswordLength)
	}

	return email, displayName, nil
}
