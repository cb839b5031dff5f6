package messaging

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/boxcrypto"
	"github.com/dmitrijs2005/carswipe/internal/client/keyring"
	"github.com/dmitrijs2005/carswipe/internal/client/models"
	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/stretchr/testify/require"
)

// backend is an in-memory stand-in for the server: one thread, two users.
type backend struct {
	mu       sync.Mutex
	profiles map[string]models.PublicProfile
	view     models.ThreadView
	now      time.Time
	seq      int64
	appends  int
	marked   []string
}

func newBackend(threadID string, users ...models.PublicProfile) *backend {
	b := &backend{
		profiles: map[string]models.PublicProfile{},
		view:     models.ThreadView{Thread: models.Thread{ID: threadID, ListingID: "listing-1"}},
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, u := range users {
		b.profiles[u.UserID] = u
		b.view.Participants = append(b.view.Participants, models.Participant{UserID: u.UserID, DisplayName: u.DisplayName, PublicKey: u.PublicKey})
	}
	return b
}

// as returns the KeyDirectory/MessageStore a logged-in user would see.
func (b *backend) as(userID string) *session {
	return &session{b: b, userID: userID}
}

type session struct {
	b      *backend
	userID string
}

func (s *session) GetPublicKey(_ context.Context, userID string) (*models.PublicProfile, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	p, ok := s.b.profiles[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (s *session) AppendMessage(_ context.Context, threadID, receiverID, ciphertext, nonce string) (*models.Message, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	if threadID != s.b.view.Thread.ID {
		return nil, common.ErrorNotFound
	}
	s.b.now = s.b.now.Add(time.Second)
	s.b.seq++
	s.b.appends++

	sender := s.b.profiles[s.userID]
	m := models.Message{
		ID:               fmt.Sprintf("m%d", s.b.seq),
		Seq:              s.b.seq,
		ThreadID:         threadID,
		SenderID:         s.userID,
		SenderName:       sender.DisplayName,
		SenderPublicKey:  sender.PublicKey,
		ReceiverID:       receiverID,
		EncryptedContent: ciphertext,
		Nonce:            nonce,
		CreatedAt:        s.b.now,
	}
	s.b.view.Messages = append(s.b.view.Messages, m)
	return &m, nil
}

func (s *session) ListMessages(_ context.Context, threadID string) (*models.ThreadView, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	if threadID != s.b.view.Thread.ID {
		return nil, common.ErrorNotFound
	}
	v := s.b.view
	v.Messages = append([]models.Message(nil), s.b.view.Messages...)
	return &v, nil
}

func (s *session) MarkRead(_ context.Context, threadID string) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()

	s.b.marked = append(s.b.marked, s.userID+":"+threadID)
	return nil
}

type party struct {
	profile models.PublicProfile
	handle  *keyring.Handle
}

func newParty(t *testing.T, id, name string) party {
	t.Helper()
	kp, err := boxcrypto.GenerateKeyPair(nil)
	require.NoError(t, err)
	return party{
		profile: models.PublicProfile{UserID: id, DisplayName: name, PublicKey: kp.Public.String()},
		handle:  keyring.NewHandle(id, kp),
	}
}
