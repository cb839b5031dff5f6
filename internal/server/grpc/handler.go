package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/carswipe/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.GetEmail(), req.GetDisplayName(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.RegisterUserResponse{UserId: user.ID, PublicKey: user.PublicKey}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}

	return &pb.LoginResponse{
		UserId:      token.UserID,
		DisplayName: token.DisplayName,
		AccessToken: token.Token,
		ExpiresAt:   timestamppb.New(token.ExpiresAt),
	}, nil
}

// GetOwnKeys returns the caller's sealed key material. Naming another user
// is refused.
func (s *GRPCServer) GetOwnKeys(ctx context.Context, req *pb.GetOwnKeysRequest) (*pb.KeyMaterial, error) {
	me, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	requested := req.GetUserId()
	if requested == "" {
		requested = me
	}

	km, err := s.keys.GetOwnKeys(ctx, me, requested)
	if err != nil {
		return nil, s.toStatus(ctx, "get_own_keys", err)
	}

	return &pb.KeyMaterial{UserId: km.UserID, PublicKey: km.PublicKey, SealedSecretKey: km.SealedSecretKey}, nil
}

func (s *GRPCServer) GetPublicKey(ctx context.Context, req *pb.GetPublicKeyRequest) (*pb.PublicProfile, error) {
	if _, err := principal(ctx); err != nil {
		return nil, err
	}

	p, err := s.keys.GetPublicKey(ctx, req.GetUserId())
	if err != nil {
		return nil, s.toStatus(ctx, "get_public_key", err)
	}

	return toPBProfile(*p), nil
}

func (s *GRPCServer) OpenThread(ctx context.Context, req *pb.OpenThreadRequest) (*pb.Thread, error) {
	me, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.messages.OpenThread(ctx, me, req.GetListingId(), req.GetCounterpartId())
	if err != nil {
		return nil, s.toStatus(ctx, "open_thread", err)
	}

	return toPBThread(*t), nil
}

func (s *GRPCServer) ListThreads(ctx context.Context, req *pb.ListThreadsRequest) (*pb.ListThreadsResponse, error) {
	me, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.messages.ListThreads(ctx, me)
	if err != nil {
		return nil, s.toStatus(ctx, "list_threads", err)
	}

	resp := &pb.ListThreadsResponse{Threads: make([]*pb.ThreadPreview, 0, len(list))}
	for _, p := range list {
		resp.Threads = append(resp.Threads, toPBPreview(p))
	}
	return resp, nil
}

func (s *GRPCServer) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ThreadView, error) {
	me, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	view, err := s.messages.ListMessages(ctx, me, req.GetThreadId())
	if err != nil {
		return nil, s.toStatus(ctx, "list_messages", err)
	}

	return toPBThreadView(view), nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.Message, error) {
	me, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.SendMessage(ctx, me, req.GetThreadId(), req.GetReceiverId(), req.GetEncryptedContent(), req.GetNonce())
	if err != nil {
		return nil, s.toStatus(ctx, "send_message", err)
	}

	s.logger.Debug(ctx, "message stored", "thread_id", msg.ThreadID, "sender_id", msg.SenderID)
	return toPBMessage(*msg), nil
}

func (s *GRPCServer) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*pb.MarkReadResponse, error) {
	me, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.messages.MarkRead(ctx, me, req.GetThreadId()); err != nil {
		return nil, s.toStatus(ctx, "mark_read", err)
	}
	return &pb.MarkReadResponse{}, nil
}
