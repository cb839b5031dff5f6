// Package keyring keeps the signed-in user's key pair for one CLI session and
// caches sealed key envelopes on disk between sessions.
package keyring

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/carswipe/internal/boxcrypto"
	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/cryptox"
	"golang.org/x/crypto/curve25519"
)

// Handle owns one user's key pair. The secret key never leaves it: callers
// encrypt and decrypt through the handle. A Handle is safe for concurrent use.
type Handle struct {
	mu     sync.RWMutex
	userID string
	pair   *boxcrypto.KeyPair
	cipher *boxcrypto.Cipher
}

// NewHandle takes ownership of pair. The caller must not use pair afterwards.
func NewHandle(userID string, pair *boxcrypto.KeyPair) *Handle {
	return &Handle{userID: userID, pair: pair}
}

// Open unseals the envelope returned by the key endpoint with the account
// password and checks that the recovered secret matches publicKey.
func Open(userID, publicKey string, sealed, password []byte) (*Handle, error) {
	pub, err := boxcrypto.ParsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	secret, err := cryptox.OpenSecretKey(sealed, password)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(secret)

	if len(secret) != boxcrypto.SecretKeySize {
		return nil, fmt.Errorf("%w: secret key is %d bytes", common.ErrInvalidKeyMaterial, len(secret))
	}

	derived, err := curve25519.X25519(secret, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidKeyMaterial, err)
	}
	if boxcrypto.PublicKey(derived) != pub {
		return nil, fmt.Errorf("%w: secret key does not match public key", common.ErrInvalidKeyMaterial)
	}

	kp := &boxcrypto.KeyPair{Public: pub}
	copy(kp.Secret[:], secret)
	return NewHandle(userID, kp), nil
}

func (h *Handle) UserID() string {
	return h.userID
}

// PublicKey returns the handle's public key. The zero key is returned after Wipe.
func (h *Handle) PublicKey() boxcrypto.PublicKey {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.pair == nil {
		return boxcrypto.PublicKey{}
	}
	return h.pair.Public
}

// Encrypt seals plaintext for the owner of peer.
func (h *Handle) Encrypt(plaintext string, peer boxcrypto.PublicKey) (*boxcrypto.EncryptedMessage, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.pair == nil {
		return nil, fmt.Errorf("%w: key handle wiped", common.ErrInvalidKeyMaterial)
	}
	return h.cipher.EncryptWith(plaintext, &h.pair.Secret, &peer)
}

// Decrypt opens a message exchanged with the owner of peer, in either direction.
func (h *Handle) Decrypt(ciphertext, nonce string, peer boxcrypto.PublicKey) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.pair == nil {
		return "", fmt.Errorf("%w: key handle wiped", common.ErrInvalidKeyMaterial)
	}
	return h.cipher.DecryptWith(ciphertext, nonce, &peer, &h.pair.Secret)
}

// Wipe zeroes the secret key. Further Encrypt/Decrypt calls fail.
func (h *Handle) Wipe() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pair != nil {
		h.pair.Wipe()
		h.pair = nil
	}
}
