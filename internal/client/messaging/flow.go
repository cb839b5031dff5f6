// Package messaging is the client side of a buyer/seller conversation:
// messages are encrypted before they leave the device and decrypted only
// when a thread is rendered.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/carswipe/internal/boxcrypto"
	"github.com/dmitrijs2005/carswipe/internal/client/keyring"
	"github.com/dmitrijs2005/carswipe/internal/client/models"
	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/logging"
)

// KeyDirectory resolves users' public keys.
type KeyDirectory interface {
	GetPublicKey(ctx context.Context, userID string) (*models.PublicProfile, error)
}

// MessageStore persists and lists encrypted messages.
type MessageStore interface {
	AppendMessage(ctx context.Context, threadID, receiverID, ciphertext, nonce string) (*models.Message, error)
	ListMessages(ctx context.Context, threadID string) (*models.ThreadView, error)
	MarkRead(ctx context.Context, threadID string) error
}

// RenderedMessage is a message ready for display.
type RenderedMessage struct {
	ID         string
	Seq        int64
	SenderID   string
	SenderName string
	ReceiverID string
	Outgoing   bool
	Text       string
	Decrypted  bool
	CreatedAt  time.Time
}

type Flow struct {
	keys   KeyDirectory
	store  MessageStore
	logger logging.Logger
}

func NewFlow(keys KeyDirectory, store MessageStore, l logging.Logger) *Flow {
	return &Flow{keys: keys, store: store, logger: l.With("module", "messaging")}
}

func validatePlaintext(plaintext string) error {
	if !utf8.ValidString(plaintext) {
		return fmt.Errorf("%w: message is not valid UTF-8", common.ErrorValidation)
	}
	n := utf8.RuneCountInString(plaintext)
	if n == 0 {
		return fmt.Errorf("%w: message is empty", common.ErrorValidation)
	}
	if n > common.MaxMessageLength {
		return fmt.Errorf("%w: message is longer than %d characters", common.ErrorValidation, common.MaxMessageLength)
	}
	return nil
}

// Send encrypts plaintext for receiverID and stores it in threadID. Nothing
// is written when the receiver has no public key.
func (f *Flow) Send(ctx context.Context, h *keyring.Handle, threadID, receiverID, plaintext string) (*models.Message, error) {
	if err := validatePlaintext(plaintext); err != nil {
		return nil, err
	}

	profile, err := f.keys.GetPublicKey(ctx, receiverID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrRecipientKeyMissing
		}
		return nil, fmt.Errorf("resolve recipient key: %w", err)
	}
	if profile == nil || profile.PublicKey == "" {
		return nil, common.ErrRecipientKeyMissing
	}

	peer, err := boxcrypto.ParsePublicKey(profile.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("recipient %s: %w", receiverID, err)
	}

	env, err := h.Encrypt(plaintext, peer)
	if err != nil {
		return nil, err
	}

	msg, err := f.store.AppendMessage(ctx, threadID, receiverID, env.Ciphertext, env.Nonce)
	if err != nil {
		return nil, err
	}

	f.logger.Debug(ctx, "message sent", "thread_id", threadID, "message_id", msg.ID)
	return msg, nil
}

// sortMessages orders by creation time, then by the server sequence number.
func sortMessages(msgs []models.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if !msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
		}
		return msgs[i].Seq < msgs[j].Seq
	})
}

// peerKey picks the key the viewer shares each message with: the sender's
// for received messages and the receiver's for the viewer's own ones.
func peerKey(view *models.ThreadView, m models.Message, viewerID string) string {
	if m.SenderID == viewerID {
		p, _ := view.Participant(m.ReceiverID)
		return p.PublicKey
	}
	if m.SenderPublicKey != "" {
		return m.SenderPublicKey
	}
	p, _ := view.Participant(m.SenderID)
	return p.PublicKey
}

// RenderThread fetches threadID and decrypts it for the handle's owner.
// Messages that cannot be decrypted are shown as a placeholder.
func (f *Flow) RenderThread(ctx context.Context, h *keyring.Handle, threadID string) ([]RenderedMessage, error) {
	view, err := f.store.ListMessages(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return f.render(ctx, h, view), nil
}

func (f *Flow) render(ctx context.Context, h *keyring.Handle, view *models.ThreadView) []RenderedMessage {
	viewer := h.UserID()

	msgs := make([]models.Message, len(view.Messages))
	copy(msgs, view.Messages)
	sortMessages(msgs)

	out := make([]RenderedMessage, 0, len(msgs))
	for _, m := range msgs {
		r := RenderedMessage{
			ID:         m.ID,
			Seq:        m.Seq,
			SenderID:   m.SenderID,
			SenderName: m.SenderName,
			ReceiverID: m.ReceiverID,
			Outgoing:   m.SenderID == viewer,
			Text:       common.UndecryptablePlaceholder,
			CreatedAt:  m.CreatedAt,
		}

		text, err := f.open(h, peerKey(view, m, viewer), m)
		if err != nil {
			f.logger.Debug(ctx, "cannot decrypt message", "message_id", m.ID, "error", err)
		} else {
			r.Text, r.Decrypted = text, true
		}
		out = append(out, r)
	}
	return out
}

func (f *Flow) open(h *keyring.Handle, key string, m models.Message) (string, error) {
	peer, err := boxcrypto.ParsePublicKey(key)
	if err != nil {
		return "", err
	}
	return h.Decrypt(m.EncryptedContent, m.Nonce, peer)
}

// MarkRead records that the viewer has read threadID up to now.
func (f *Flow) MarkRead(ctx context.Context, threadID string) error {
	return f.store.MarkRead(ctx, threadID)
}

// UnreadCount counts messages addressed to viewerID created after lastReadAt.
func UnreadCount(messages []models.Message, viewerID string, lastReadAt time.Time) int {
	n := 0
	for _, m := range messages {
		if m.ReceiverID == viewerID && m.CreatedAt.After(lastReadAt) {
			n++
		}
	}
	return n
}
