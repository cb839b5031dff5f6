package models

import "time"

// Message is a stored ciphertext. Seq breaks created_at ties.
type Message struct {
	ID               string
	Seq              int64
	ThreadID         string
	SenderID         string
	SenderName       string
	SenderPublicKey  string
	ReceiverID       string
	EncryptedContent string
	Nonce            string
	CreatedAt        time.Time
}
