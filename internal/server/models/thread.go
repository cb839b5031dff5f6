package models

import "time"

type Thread struct {
	ID        string
	ListingID string
	// PairKey identifies the two participants independent of order; the
	// database keeps (ListingID, PairKey) unique.
	PairKey   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PairKey returns the order independent key of the users a and b.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// Participant is a thread member joined with the user's public profile.
type Participant struct {
	ThreadID    string
	UserID      string
	DisplayName string
	PublicKey   string
	LastReadAt  time.Time
}

// ThreadPreview is one row of a user's inbox.
type ThreadPreview struct {
	Thread        Thread
	Counterpart   PublicProfile
	LastMessageAt time.Time
	Preview       string
	UnreadCount   int
}

// ThreadView is a thread with its participants and ordered messages.
type ThreadView struct {
	Thread       Thread
	Participants []Participant
	Messages     []Message
}

// Counterpart returns the participant that is not userID.
func (v *ThreadView) Counterpart(userID string) (Participant, bool) {
	for _, p := range v.Participants {
		if p.UserID != userID {
			return p, true
		}
	}
	return Participant{}, false
}

// IsParticipant reports whether userID belongs to the thread.
func (v *ThreadView) IsParticipant(userID string) bool {
	for _, p := range v.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
