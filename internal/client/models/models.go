// Package models holds the client-side view of accounts, threads and messages
// as returned by the server. Message content stays encrypted in these types.
package models

import "time"

// Session is an authenticated login.
type Session struct {
	UserID      string
	DisplayName string
	AccessToken string
	ExpiresAt   time.Time
}

type KeyMaterial struct {
	UserID          string
	PublicKey       string
	SealedSecretKey []byte
}

type PublicProfile struct {
	UserID      string
	DisplayName string
	PublicKey   string
}

type Thread struct {
	ID        string
	ListingID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Participant struct {
	UserID      string
	DisplayName string
	PublicKey   string
	LastReadAt  time.Time
}

// Message is a stored, still encrypted message.
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

type ThreadPreview struct {
	Thread        Thread
	Counterpart   PublicProfile
	LastMessageAt time.Time
	Preview       string
	UnreadCount   int
}

type ThreadView struct {
	Thread       Thread
	Participants []Participant
	Messages     []Message
}

// Participant returns the member with userID.
func (v *ThreadView) Participant(userID string) (Participant, bool) {
	for _, p := range v.Participants {
		if p.UserID == userID {
			return p, true
		}
	}
	return Participant{}, false
}

// Counterpart returns the member that is not viewerID.
func (v *ThreadView) Counterpart(viewerID string) (Participant, bool) {
	for _, p := range v.Participants {
		if p.UserID != viewerID {
			return p, true
		}
	}
	return Participant{}, false
}
