// Package cryptox holds password based primitives: argon2id key derivation,
// bcrypt password hashes and the sealed envelope that keeps a user's box
// secret key encrypted at rest.
package cryptox

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	envelopeVersion = 1
	saltSize        = 16
	nonceSize       = 24
	keySize         = 32

	// BcryptCost matches the cost used for account passwords.
	BcryptCost = 12
)

// KDFParams are the argon2id parameters stored next to each envelope so they
// can be raised later without breaking existing keys.
type KDFParams struct {
	Time    uint32 `cbor:"t"`
	Memory  uint32 `cbor:"m"`
	Threads uint8  `cbor:"p"`
}

// DefaultKDFParams is used for new envelopes.
var DefaultKDFParams = KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4}

// SealedKey is the at-rest form of a secret key.
type SealedKey struct {
	Version int       `cbor:"v"`
	KDF     KDFParams `cbor:"kdf"`
	Salt    []byte    `cbor:"salt"`
	Nonce   []byte    `cbor:"nonce"`
	Box     []byte    `cbor:"box"`
}

// maxKDFMemory caps the argon2 memory an envelope may ask for, in KiB (1 GiB).
const maxKDFMemory = 1 << 20

func (p KDFParams) valid() bool {
	return p.Time >= 1 && p.Threads >= 1 && p.Memory >= 8*uint32(p.Threads) && p.Memory <= maxKDFMemory
}

func deriveKey(password, salt []byte, p KDFParams) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, keySize)
}

// SealSecretKey encrypts secret under a key derived from password and returns
// the CBOR encoded envelope.
func SealSecretKey(secret, password []byte) ([]byte, error) {
	return sealSecretKey(rand.Reader, secret, password, DefaultKDFParams)
}

func sealSecretKey(r io.Reader, secret, password []byte, p KDFParams) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", common.ErrEntropySource, err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(r, nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", common.ErrEntropySource, err)
	}

	var key [keySize]byte
	derived := deriveKey(password, salt, p)
	copy(key[:], derived)
	common.WipeByteArray(derived)
	defer common.WipeByteArray(key[:])

	env := SealedKey{
		Version: envelopeVersion,
		KDF:     p,
		Salt:    salt,
		Nonce:   nonce[:],
		Box:     secretbox.Seal(nil, secret, &nonce, &key),
	}

	out, err := cbor.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode sealed key: %w", err)
	}
	return out, nil
}

// OpenSecretKey reverses SealSecretKey. A wrong password or a modified blob
// yields common.ErrWrongPassword.
func OpenSecretKey(sealed, password []byte) ([]byte, error) {
	var env SealedKey
	if err := cbor.Unmarshal(sealed, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrWrongPassword, err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("unsupported key envelope version %d", env.Version)
	}
	if len(env.Nonce) != nonceSize || len(env.Salt) == 0 {
		return nil, common.ErrWrongPassword
	}
	if !env.KDF.valid() {
		return nil, fmt.Errorf("%w: kdf parameters out of range", common.ErrWrongPassword)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], env.Nonce)

	var key [keySize]byte
	derived := deriveKey(password, env.Salt, env.KDF)
	copy(key[:], derived)
	common.WipeByteArray(derived)
	defer common.WipeByteArray(key[:])

	out, ok := secretbox.Open(nil, env.Box, &nonce, &key)
	if !ok {
		return nil, common.ErrWrongPassword
	}
	return out, nil
}

// HashPassword returns a bcrypt hash of password.
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, BcryptCost)
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}
