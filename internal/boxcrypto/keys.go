package boxcrypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"golang.org/x/crypto/nacl/box"
)

const (
	PublicKeySize = 32
	SecretKeySize = 32
	NonceSize     = 24
)

// PublicKey is a curve25519 public key. It is safe to disclose.
type PublicKey [PublicKeySize]byte

// SecretKey is a curve25519 secret key. It must only ever reach its owner.
type SecretKey [SecretKeySize]byte

// KeyPair is a matching public/secret key pair.
type KeyPair struct {
	Public PublicKey
	Secret SecretKey
}

// EncodedKeyPair is the base64 form of a KeyPair used for storage and transport.
type EncodedKeyPair struct {
	PublicKey string
	SecretKey string
}

// GenerateKeyPair creates a new key pair reading randomness from r.
// A nil r means crypto/rand. A broken source is reported as
// common.ErrEntropySource; no key is returned in that case.
func GenerateKeyPair(r io.Reader) (*KeyPair, error) {
	if r == nil {
		r = rand.Reader
	}

	pub, sec, err := box.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("%w: generate key pair: %v", common.ErrEntropySource, err)
	}

	kp := &KeyPair{Public: PublicKey(*pub), Secret: SecretKey(*sec)}
	common.WipeByteArray(sec[:])

	if kp.Public == (PublicKey{}) {
		return nil, fmt.Errorf("%w: degenerate public key", common.ErrEntropySource)
	}
	return kp, nil
}

// Encode returns the base64 form of the pair.
func (kp *KeyPair) Encode() EncodedKeyPair {
	return EncodedKeyPair{PublicKey: kp.Public.String(), SecretKey: kp.Secret.Encode()}
}

// Wipe zeroes the secret half of the pair.
func (kp *KeyPair) Wipe() {
	common.WipeByteArray(kp.Secret[:])
}

// String returns the standard base64 encoding of the public key.
func (k PublicKey) String() string {
	return base64.StdEncoding.EncodeToString(k[:])
}

// Encode returns the standard base64 encoding of the secret key. SecretKey
// deliberately has no String method so it is not printed by accident.
func (k SecretKey) Encode() string {
	return base64.StdEncoding.EncodeToString(k[:])
}

// ParsePublicKey decodes a base64 public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var k PublicKey
	if err := decodeKey(s, k[:]); err != nil {
		return PublicKey{}, fmt.Errorf("public key: %w", err)
	}
	return k, nil
}

// ParseSecretKey decodes a base64 secret key.
func ParseSecretKey(s string) (SecretKey, error) {
	var k SecretKey
	if err := decodeKey(s, k[:]); err != nil {
		return SecretKey{}, fmt.Errorf("secret key: %w", err)
	}
	return k, nil
}

func decodeKey(s string, dst []byte) error {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: bad base64", common.ErrInvalidKeyMaterial)
	}
	defer common.WipeByteArray(raw)

	if len(raw) != len(dst) {
		return fmt.Errorf("%w: got %d bytes, want %d", common.ErrInvalidKeyMaterial, len(raw), len(dst))
	}
	copy(dst, raw)
	return nil
}
