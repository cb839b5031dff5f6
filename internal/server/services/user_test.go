package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/boxcrypto"
	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/cryptox"
	"github.com/dmitrijs2005/carswipe/internal/server/auth"
	"github.com/dmitrijs2005/carswipe/internal/server/config"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }

func userFixture(id, email, hash string) *models.User {
	return &models.User{ID: id, Email: email, DisplayName: "Buyer", PasswordHash: hash, PublicKey: "pk", SealedSecretKey: []byte("sealed")}
}

func TestRegister_IssuesSealedKeyPair(t *testing.T) {
	st := newFakeStore()
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	s := NewUserService(db, &fakeRepoManager{st}, &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}, nil)
	s.hashPassword = func(p []byte) ([]byte, error) { return bcrypt.GenerateFromPassword(p, bcrypt.MinCost) }

	u, err := s.Register(context.Background(), "  Seller@Example.com ", "Seller", "correct horse")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "seller@example.com", u.Email)
	pub, err := boxcrypto.ParsePublicKey(u.PublicKey)
	require.NoError(t, err)
	assert.NotEqual(t, boxcrypto.PublicKey{}, pub)

	secret, err := cryptox.OpenSecretKey(u.SealedSecretKey, []byte("correct horse"))
	require.NoError(t, err)
	require.Len(t, secret, boxcrypto.SecretKeySize)

	// the opened secret must belong to the stored public key
	var sk boxcrypto.SecretKey
	copy(sk[:], secret)
	msg, err := boxcrypto.NewCipher(nil).EncryptWith("ping", &sk, &pub)
	require.NoError(t, err)
	out, err := boxcrypto.NewCipher(nil).DecryptWith(msg.Ciphertext, msg.Nonce, &pub, &sk)
	require.NoError(t, err)
	assert.Equal(t, "ping", out)

	_, err = cryptox.OpenSecretKey(u.SealedSecretKey, []byte("wrong password"))
	require.ErrorIs(t, err, common.ErrWrongPassword)

	assert.True(t, cryptox.CheckPassword([]byte(st.users[u.ID].PasswordHash), []byte("correct horse")))
}

func TestRegister_EntropyFailureAbortsSignup(t *testing.T) {
	st := newFakeStore()
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	s := NewUserService(db, &fakeRepoManager{st}, &config.Config{}, nil)
	s.hashPassword = func(p []byte) ([]byte, error) { return []byte("hash"), nil }
	s.entropy = failingReader{}

	_, err := s.Register(context.Background(), "buyer@example.com", "Buyer", "password123")
	require.ErrorIs(t, err, common.ErrEntropySource)
	assert.Empty(t, st.users, "no user row without a key pair")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_SealFailureAbortsSignup(t *testing.T) {
	st := newFakeStore()
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	s := NewUserService(db, &fakeRepoManager{st}, &config.Config{}, nil)
	s.hashPassword = func(p []byte) ([]byte, error) { return []byte("hash"), nil }
	s.sealSecretKey = func(secret, password []byte) ([]byte, error) { return nil, errors.New("kdf exploded") }

	_, err := s.Register(context.Background(), "buyer@example.com", "Buyer", "password123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seal secret key")
	assert.Empty(t, st.users)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	st := newFakeStore()
	st.addUser("u1", "Existing", "pk")
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	s := NewUserService(db, &fakeRepoManager{st}, &config.Config{}, nil)
	s.hashPassword = func(p []byte) ([]byte, error) { return []byte("hash"), nil }
	s.sealSecretKey = func(secret, password []byte) ([]byte, error) { return []byte("sealed"), nil }

	_, err := s.Register(context.Background(), "u1@example.com", "Dup", "password123")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	s := NewUserService(nil, &fakeRepoManager{newFakeStore()}, &config.Config{}, nil)

	tests := []struct {
		name, email, display, password string
	}{
		{"bad email", "not-an-email", "Name", "password123"},
		{"empty display name", "a@example.com", "   ", "password123"},
		{"short password", "a@example.com", "Name", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.email, tt.display, tt.password)
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestLogin_Flows(t *testing.T) {
	st := newFakeStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	st.users["u1"] = userFixture("u1", "buyer@example.com", string(hash))

	s := NewUserService(nil, &fakeRepoManager{st}, &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}, nil)

	tok, err := s.Login(context.Background(), "Buyer@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u1", tok.UserID)
	assert.True(t, tok.ExpiresAt.After(time.Now()))

	uid, err := auth.GetUserIDFromToken(tok.Token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)

	_, err = s.Login(context.Background(), "buyer@example.com", "nope")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(context.Background(), "ghost@example.com", "password123")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}
