package models

import "time"

// User is an account together with its write-once key material.
// SealedSecretKey is the cryptox envelope; the server cannot open it.
type User struct {
	ID              string
	Email           string
	DisplayName     string
	PasswordHash    string
	PublicKey       string
	SealedSecretKey []byte
	CreatedAt       time.Time
}

// PublicProfile is what any authenticated user may learn about another.
type PublicProfile struct {
	UserID      string
	DisplayName string
	PublicKey   string
}

// KeyMaterial is returned only to the key owner.
type KeyMaterial struct {
	UserID          string
	PublicKey       string
	SealedSecretKey []byte
}
