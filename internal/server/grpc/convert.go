package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/carswipe/internal/proto"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// zero times stay unset on the wire
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func toPBProfile(p models.PublicProfile) *pb.PublicProfile {
	return &pb.PublicProfile{UserId: p.UserID, DisplayName: p.DisplayName, PublicKey: p.PublicKey}
}

func toPBThread(t models.Thread) *pb.Thread {
	return &pb.Thread{
		Id:        t.ID,
		ListingId: t.ListingID,
		CreatedAt: toTimestamp(t.CreatedAt),
		UpdatedAt: toTimestamp(t.UpdatedAt),
	}
}

func toPBMessage(m models.Message) *pb.Message {
	return &pb.Message{
		Id:               m.ID,
		Seq:              m.Seq,
		ThreadId:         m.ThreadID,
		SenderId:         m.SenderID,
		SenderName:       m.SenderName,
		SenderPublicKey:  m.SenderPublicKey,
		ReceiverId:       m.ReceiverID,
		EncryptedContent: m.EncryptedContent,
		Nonce:            m.Nonce,
		CreatedAt:        toTimestamp(m.CreatedAt),
	}
}

func toPBPreview(p models.ThreadPreview) *pb.ThreadPreview {
	return &pb.ThreadPreview{
		Thread:        toPBThread(p.Thread),
		Counterpart:   toPBProfile(p.Counterpart),
		LastMessageAt: toTimestamp(p.LastMessageAt),
		Preview:       p.Preview,
		UnreadCount:   int32(p.UnreadCount),
	}
}

func toPBThreadView(v *models.ThreadView) *pb.ThreadView {
	out := &pb.ThreadView{
		Thread:       toPBThread(v.Thread),
		Participants: make([]*pb.Participant, 0, len(v.Participants)),
		Messages:     make([]*pb.Message, 0, len(v.Messages)),
	}
	for _, p := range v.Participants {
		out.Participants = append(out.Participants, &pb.Participant{
			UserId:      p.UserID,
			DisplayName: p.DisplayName,
			PublicKey:   p.PublicKey,
			LastReadAt:  toTimestamp(p.LastReadAt),
		})
	}
	for _, m := range v.Messages {
		out.Messages = append(out.Messages, toPBMessage(m))
	}
	return out
}
