package boxcrypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"golang.org/x/crypto/nacl/box"
)

// Overhead is the number of bytes box adds to every plaintext.
const Overhead = box.Overhead

// EncryptedMessage is the base64 wire form of one sealed message.
type EncryptedMessage struct {
	Ciphertext string
	Nonce      string
}

// Cipher seals and opens messages. The zero value reads nonces from crypto/rand.
type Cipher struct {
	rand io.Reader
}

// NewCipher returns a Cipher drawing nonces from r (crypto/rand when nil).
func NewCipher(r io.Reader) *Cipher {
	return &Cipher{rand: r}
}

var defaultCipher = &Cipher{}

func (c *Cipher) reader() io.Reader {
	if c == nil || c.rand == nil {
		return rand.Reader
	}
	return c.rand
}

// Seal encrypts plaintext from the owner of senderSecret to the owner of
// receiverPublic under a freshly generated nonce.
func (c *Cipher) Seal(plaintext []byte, senderSecret *SecretKey, receiverPublic *PublicKey) (ciphertext []byte, nonce [NonceSize]byte, err error) {
	if _, err = io.ReadFull(c.reader(), nonce[:]); err != nil {
		return nil, nonce, fmt.Errorf("%w: nonce: %v", common.ErrEntropySource, err)
	}

	ciphertext = box.Seal(nil, plaintext, &nonce, (*[PublicKeySize]byte)(receiverPublic), (*[SecretKeySize]byte)(senderSecret))
	return ciphertext, nonce, nil
}

// Open authenticates and decrypts ciphertext. It returns
// common.ErrDecryptionFailed on any failure.
func (c *Cipher) Open(ciphertext []byte, nonce *[NonceSize]byte, senderPublic *PublicKey, receiverSecret *SecretKey) ([]byte, error) {
	if len(ciphertext) < Overhead {
		return nil, common.ErrDecryptionFailed
	}

	out, ok := box.Open(nil, ciphertext, nonce, (*[PublicKeySize]byte)(senderPublic), (*[SecretKeySize]byte)(receiverSecret))
	if !ok {
		return nil, common.ErrDecryptionFailed
	}
	return out, nil
}

// Encrypt seals a UTF-8 message given base64 keys and returns the base64
// ciphertext and nonce.
func (c *Cipher) Encrypt(plaintext string, senderSecretKey, receiverPublicKey string) (*EncryptedMessage, error) {
	sec, err := ParseSecretKey(senderSecretKey)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(sec[:])

	pub, err := ParsePublicKey(receiverPublicKey)
	if err != nil {
		return nil, err
	}

	return c.EncryptWith(plaintext, &sec, &pub)
}

// EncryptWith is Encrypt for already decoded keys.
func (c *Cipher) EncryptWith(plaintext string, senderSecret *SecretKey, receiverPublic *PublicKey) (*EncryptedMessage, error) {
	ct, nonce, err := c.Seal([]byte(plaintext), senderSecret, receiverPublic)
	if err != nil {
		return nil, err
	}

	return &EncryptedMessage{
		Ciphertext: base64.StdEncoding.EncodeToString(ct),
		Nonce:      base64.StdEncoding.EncodeToString(nonce[:]),
	}, nil
}

// Decrypt opens a base64 ciphertext/nonce pair. Malformed keys give
// common.ErrInvalidKeyMaterial; everything else that prevents recovering the
// exact original text gives common.ErrDecryptionFailed.
func (c *Cipher) Decrypt(ciphertext, nonce, senderPublicKey, receiverSecretKey string) (string, error) {
	pub, err := ParsePublicKey(senderPublicKey)
	if err != nil {
		return "", err
	}

	sec, err := ParseSecretKey(receiverSecretKey)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(sec[:])

	return c.DecryptWith(ciphertext, nonce, &pub, &sec)
}

// DecryptWith is Decrypt for already decoded keys.
func (c *Cipher) DecryptWith(ciphertext, nonce string, senderPublic *PublicKey, receiverSecret *SecretKey) (string, error) {
	ct, n, err := decodeEnvelope(ciphertext, nonce)
	if err != nil {
		return "", common.ErrDecryptionFailed
	}

	out, err := c.Open(ct, n, senderPublic, receiverSecret)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", common.ErrDecryptionFailed
	}
	return string(out), nil
}

// Encrypt uses the default crypto/rand backed cipher.
func Encrypt(plaintext string, senderSecretKey, receiverPublicKey string) (*EncryptedMessage, error) {
	return defaultCipher.Encrypt(plaintext, senderSecretKey, receiverPublicKey)
}

// Decrypt uses the default cipher.
func Decrypt(ciphertext, nonce, senderPublicKey, receiverSecretKey string) (string, error) {
	return defaultCipher.Decrypt(ciphertext, nonce, senderPublicKey, receiverSecretKey)
}

// ValidateEnvelope checks the structure of a stored message without any key:
// both fields must be base64, the nonce 24 bytes and the ciphertext at least
// one box overhead long.
func ValidateEnvelope(ciphertext, nonce string) error {
	if _, _, err := decodeEnvelope(ciphertext, nonce); err != nil {
		return err
	}
	return nil
}

func decodeEnvelope(ciphertext, nonce string) ([]byte, *[NonceSize]byte, error) {
	ct, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ciphertext is not base64", common.ErrorValidation)
	}
	if len(ct) < Overhead {
		return nil, nil, fmt.Errorf("%w: ciphertext too short", common.ErrorValidation)
	}

	raw, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: nonce is not base64", common.ErrorValidation)
	}
	if len(raw) != NonceSize {
		return nil, nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", common.ErrorValidation, NonceSize, len(raw))
	}

	var n [NonceSize]byte
	copy(n[:], raw)
	return ct, &n, nil
}
