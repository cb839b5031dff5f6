package boxcrypto

import (
	"encoding/base64"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPair(t *testing.T) EncodedKeyPair {
	t.Helper()
	kp, err := GenerateKeyPair(nil)
	require.NoError(t, err)
	return kp.Encode()
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	long := strings.Repeat("ä", common.MaxMessageLength)
	require.Equal(t, common.MaxMessageLength, utf8.RuneCountInString(long))

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "Is this car still available?"},
		{"multibyte", "Цена окончательная? 🚗 車はまだありますか"},
		{"max length", long},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Encrypt(tt.text, alice.SecretKey, bob.PublicKey)
			require.NoError(t, err)

			got, err := Decrypt(msg.Ciphertext, msg.Nonce, alice.PublicKey, bob.SecretKey)
			require.NoError(t, err)
			assert.Equal(t, tt.text, got)
		})
	}
}

func TestDecrypt_SenderReadsOwnMessageWithCounterpartKey(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	msg, err := Encrypt("Is this car still available?", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	got, err := Decrypt(msg.Ciphertext, msg.Nonce, bob.PublicKey, alice.SecretKey)
	require.NoError(t, err)
	assert.Equal(t, "Is this car still available?", got)
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	m1, err := Encrypt("same text", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)
	m2, err := Encrypt("same text", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	assert.NotEqual(t, m1.Nonce, m2.Nonce)
	assert.NotEqual(t, m1.Ciphertext, m2.Ciphertext)

	raw, err := base64.StdEncoding.DecodeString(m1.Nonce)
	require.NoError(t, err)
	assert.Len(t, raw, NonceSize)
}

func TestEncrypt_CiphertextDiffersFromPlaintext(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	msg, err := Encrypt("Is this car still available?", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(msg.Ciphertext)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Is this car")
	assert.Len(t, raw, len("Is this car still available?")+Overhead)
}

func flipBit(t *testing.T, b64 string, bit int) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	raw[bit/8] ^= 1 << (bit % 8)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestDecrypt_DetectsSingleBitTampering(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	msg, err := Encrypt("price is negotiable", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	ctLen, _ := base64.StdEncoding.DecodeString(msg.Ciphertext)
	for bit := 0; bit < len(ctLen)*8; bit++ {
		_, err := Decrypt(flipBit(t, msg.Ciphertext, bit), msg.Nonce, alice.PublicKey, bob.SecretKey)
		require.ErrorIs(t, err, common.ErrDecryptionFailed, "ciphertext bit %d", bit)
	}

	for bit := 0; bit < NonceSize*8; bit++ {
		_, err := Decrypt(msg.Ciphertext, flipBit(t, msg.Nonce, bit), alice.PublicKey, bob.SecretKey)
		require.ErrorIs(t, err, common.ErrDecryptionFailed, "nonce bit %d", bit)
	}
}

func TestDecrypt_CrossKeyRejection(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)
	mallory := mustPair(t)

	msg, err := Encrypt("meet at the dealership", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	_, err = Decrypt(msg.Ciphertext, msg.Nonce, alice.PublicKey, mallory.SecretKey)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed, "wrong receiver secret")

	_, err = Decrypt(msg.Ciphertext, msg.Nonce, mallory.PublicKey, bob.SecretKey)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed, "wrong declared sender")
}

func TestDecrypt_CorruptedInput(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	msg, err := Encrypt("hello", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		ct    string
		nonce string
	}{
		{"ciphertext not base64", "%%%", msg.Nonce},
		{"nonce not base64", msg.Ciphertext, "%%%"},
		{"short nonce", msg.Ciphertext, base64.StdEncoding.EncodeToString(make([]byte, 12))},
		{"short ciphertext", base64.StdEncoding.EncodeToString([]byte{1, 2, 3}), msg.Nonce},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decrypt(tt.ct, tt.nonce, alice.PublicKey, bob.SecretKey)
			assert.ErrorIs(t, err, common.ErrDecryptionFailed)
			assert.Empty(t, got)
		})
	}
}

func TestDecrypt_IsDeterministic(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	msg, err := Encrypt("deterministic", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := Decrypt(msg.Ciphertext, msg.Nonce, alice.PublicKey, bob.SecretKey)
		require.NoError(t, err)
		assert.Equal(t, "deterministic", got)
	}
}

func TestDecrypt_RejectsNonUTF8Payload(t *testing.T) {
	alice, err := GenerateKeyPair(nil)
	require.NoError(t, err)
	bob, err := GenerateKeyPair(nil)
	require.NoError(t, err)

	ct, nonce, err := defaultCipher.Seal([]byte{0xff, 0xfe, 0xfd}, &alice.Secret, &bob.Public)
	require.NoError(t, err)

	_, err = defaultCipher.DecryptWith(
		base64.StdEncoding.EncodeToString(ct),
		base64.StdEncoding.EncodeToString(nonce[:]),
		&alice.Public, &bob.Secret)
	assert.ErrorIs(t, err, common.ErrDecryptionFailed)
}

func TestEncryptDecrypt_InvalidKeyMaterial(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	_, err := Encrypt("x", "short", bob.PublicKey)
	assert.ErrorIs(t, err, common.ErrInvalidKeyMaterial)

	_, err = Encrypt("x", alice.SecretKey, base64.StdEncoding.EncodeToString(make([]byte, 16)))
	assert.ErrorIs(t, err, common.ErrInvalidKeyMaterial)

	msg, err := Encrypt("x", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	_, err = Decrypt(msg.Ciphertext, msg.Nonce, "!!", bob.SecretKey)
	assert.ErrorIs(t, err, common.ErrInvalidKeyMaterial)

	_, err = Decrypt(msg.Ciphertext, msg.Nonce, alice.PublicKey, "")
	assert.ErrorIs(t, err, common.ErrInvalidKeyMaterial)
}

func TestCipher_BrokenNonceSource(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	c := NewCipher(failingReader{})
	msg, err := c.Encrypt("x", alice.SecretKey, bob.PublicKey)
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, common.ErrEntropySource)
}

func TestValidateEnvelope(t *testing.T) {
	alice := mustPair(t)
	bob := mustPair(t)

	msg, err := Encrypt("ok", alice.SecretKey, bob.PublicKey)
	require.NoError(t, err)

	assert.NoError(t, ValidateEnvelope(msg.Ciphertext, msg.Nonce))
	assert.ErrorIs(t, ValidateEnvelope(msg.Ciphertext, "AAAA"), common.ErrorValidation)
	assert.ErrorIs(t, ValidateEnvelope("AAAA", msg.Nonce), common.ErrorValidation)
	assert.ErrorIs(t, ValidateEnvelope("not base64!", msg.Nonce), common.ErrorValidation)
}
