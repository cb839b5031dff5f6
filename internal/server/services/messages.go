package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carswipe/internal/boxcrypto"
	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/dbx"
	"github.com/dmitrijs2005/carswipe/internal/server/metrics"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MessageService persists two-party threads and their ciphertexts. It never
// sees plaintext; envelopes are only checked for structure.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	metrics     *metrics.Metrics
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager, mx *metrics.Metrics) *MessageService {
	return &MessageService{db: db, repomanager: m, metrics: mx}
}

// OpenThread returns the thread between principal and counterpartID about
// listingID, creating it with both participants if it does not exist yet.
func (s *MessageService) OpenThread(ctx context.Context, principal, listingID, counterpartID string) (*models.Thread, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" || counterpartID == "" {
		return nil, fmt.Errorf("%w: listing and counterpart are required", common.ErrorValidation)
	}
	if principal == counterpartID {
		return nil, fmt.Errorf("%w: cannot message yourself", common.ErrorValidation)
	}

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, counterpartID); err != nil {
		return nil, err
	}

	existing, err := s.repomanager.Threads(s.db).FindByListingAndParticipants(ctx, listingID, principal, counterpartID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	var thread *models.Thread
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Threads(tx)
		var err error
		thread, err = repo.Create(ctx, &models.Thread{
			ID:        uuid.NewString(),
			ListingID: listingID,
			PairKey:   models.PairKey(principal, counterpartID),
		})
		if err != nil {
			return err
		}
		if err := repo.AddParticipant(ctx, thread.ID, principal); err != nil {
			return err
		}
		return repo.AddParticipant(ctx, thread.ID, counterpartID)
	})
	if errors.Is(err, common.ErrorAlreadyExists) {
		// a concurrent open committed first
		return s.repomanager.Threads(s.db).FindByListingAndParticipants(ctx, listingID, principal, counterpartID)
	}
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// SendMessage stores a ciphertext from principal to receiverID. The insert
// and the thread's updated_at bump commit together or not at all.
func (s *MessageService) SendMessage(ctx context.Context, principal, threadID, receiverID, ciphertext, nonce string) (*models.Message, error) {
	if err := boxcrypto.ValidateEnvelope(ciphertext, nonce); err != nil {
		return nil, err
	}

	participants, err := s.repomanager.Threads(s.db).ListParticipants(ctx, threadID)
	if err != nil {
		return nil, err
	}

	var sender, receiver *models.Participant
	for i := range participants {
		switch participants[i].UserID {
		case principal:
			sender = &participants[i]
		case receiverID:
			receiver = &participants[i]
		}
	}
	if sender == nil {
		return nil, common.ErrorNotFound
	}
	if receiver == nil || receiverID == principal {
		return nil, fmt.Errorf("%w: receiver is not the other participant", common.ErrorValidation)
	}
	if receiver.PublicKey == "" {
		return nil, common.ErrRecipientKeyMissing
	}

	msg := &models.Message{
		ID:               uuid.NewString(),
		ThreadID:         threadID,
		SenderID:         principal,
		ReceiverID:       receiverID,
		EncryptedContent: ciphertext,
		Nonce:            nonce,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Messages(tx).Create(ctx, msg); err != nil {
			return err
		}
		return s.repomanager.Threads(tx).Touch(ctx, threadID)
	})
	if err != nil {
		return nil, err
	}

	msg.SenderName = sender.DisplayName
	msg.SenderPublicKey = sender.PublicKey
	s.metrics.MessageStored()
	return msg, nil
}

// ListMessages returns the thread with participants and messages ordered by
// (created_at, seq). Non-participants get common.ErrorNotFound.
func (s *MessageService) ListMessages(ctx context.Context, principal, threadID string) (*models.ThreadView, error) {
	threads := s.repomanager.Threads(s.db)

	thread, err := threads.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	participants, err := threads.ListParticipants(ctx, threadID)
	if err != nil {
		return nil, err
	}

	view := &models.ThreadView{Thread: *thread, Participants: participants}
	if !view.IsParticipant(principal) {
		return nil, common.ErrorNotFound
	}

	view.Messages, err = s.repomanager.Messages(s.db).ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// MarkRead moves principal's read marker to now.
func (s *MessageService) MarkRead(ctx context.Context, principal, threadID string) error {
	return s.repomanager.Threads(s.db).MarkRead(ctx, threadID, principal)
}

// ListThreads returns principal's inbox, most recently active first.
func (s *MessageService) ListThreads(ctx context.Context, principal string) ([]models.ThreadPreview, error) {
	return s.repomanager.Threads(s.db).ListForUser(ctx, principal)
}
