package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

const (
	// MaxMessageLength is the maximum message length in characters (runes).
	MaxMessageLength = 2000

	// UndecryptablePlaceholder replaces the text of a message that failed to decrypt.
	UndecryptablePlaceholder = "[Unable to decrypt]"

	// EncryptedPreview is shown instead of message content in thread listings.
	EncryptedPreview = "[Encrypted]"
)
