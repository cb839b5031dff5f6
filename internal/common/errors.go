// Package common defines shared constants and sentinel errors used across
// client and server layers of carswipe. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Key material and message cipher errors.
	ErrInvalidKeyMaterial  = errors.New("invalid key material")
	ErrRecipientKeyMissing = errors.New("cannot message this user securely: recipient has no public key")
	ErrDecryptionFailed    = errors.New("unable to decrypt")
	ErrEntropySource       = errors.New("entropy source failure")
	ErrWrongPassword       = errors.New("wrong password or corrupted key envelope")
)
