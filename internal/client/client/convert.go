package client

import (
	"time"

	"github.com/dmitrijs2005/carswipe/internal/client/models"
	pb "github.com/dmitrijs2005/carswipe/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fromPBProfile(p *pb.PublicProfile) models.PublicProfile {
	return models.PublicProfile{UserID: p.GetUserId(), DisplayName: p.GetDisplayName(), PublicKey: p.GetPublicKey()}
}

func fromPBThread(t *pb.Thread) models.Thread {
	return models.Thread{
		ID:        t.GetId(),
		ListingID: t.GetListingId(),
		CreatedAt: fromTimestamp(t.GetCreatedAt()),
		UpdatedAt: fromTimestamp(t.GetUpdatedAt()),
	}
}

func fromPBMessage(m *pb.Message) models.Message {
	return models.Message{
		ID:               m.GetId(),
		Seq:              m.GetSeq(),
		ThreadID:         m.GetThreadId(),
		SenderID:         m.GetSenderId(),
		SenderName:       m.GetSenderName(),
		SenderPublicKey:  m.GetSenderPublicKey(),
		ReceiverID:       m.GetReceiverId(),
		EncryptedContent: m.GetEncryptedContent(),
		Nonce:            m.GetNonce(),
		CreatedAt:        fromTimestamp(m.GetCreatedAt()),
	}
}

func fromPBPreview(p *pb.ThreadPreview) models.ThreadPreview {
	return models.ThreadPreview{
		Thread:        fromPBThread(p.GetThread()),
		Counterpart:   fromPBProfile(p.GetCounterpart()),
		LastMessageAt: fromTimestamp(p.GetLastMessageAt()),
		Preview:       p.GetPreview(),
		UnreadCount:   int(p.GetUnreadCount()),
	}
}

func fromPBThreadView(v *pb.ThreadView) *models.ThreadView {
	out := &models.ThreadView{
		Thread:       fromPBThread(v.GetThread()),
		Participants: make([]models.Participant, 0, len(v.GetParticipants())),
		Messages:     make([]models.Message, 0, len(v.GetMessages())),
	}
	for _, p := range v.GetParticipants() {
		out.Participants = append(out.Participants, models.Participant{
			UserID:      p.GetUserId(),
			DisplayName: p.GetDisplayName(),
			PublicKey:   p.GetPublicKey(),
			LastReadAt:  fromTimestamp(p.GetLastReadAt()),
		})
	}
	for _, m := range v.GetMessages() {
		out.Messages = append(out.Messages, fromPBMessage(m))
	}
	return out
}
