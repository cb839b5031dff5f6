package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/client/models"
	"github.com/dmitrijs2005/carswipe/internal/common"
	pb "github.com/dmitrijs2005/carswipe/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.MessengerClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if tok := s.token(); tok != "" {
		ctx = withAccessToken(ctx, tok)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewCarswipeClient connects to endpointURL. Extra dial options are appended
// after the defaults (plaintext transport, token interceptor).
func NewCarswipeClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewMessengerClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

// Register creates an account and returns the new user ID. The server
// generates the key pair.
func (s *GRPCClient) Register(ctx context.Context, email, displayName, password string) (string, error) {
	req := &pb.RegisterUserRequest{Email: email, DisplayName: displayName, Password: password}

	resp, err := s.client.RegisterUser(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

// Login authenticates and keeps the access token for subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setToken(resp.GetAccessToken())

	return &models.Session{
		UserID:      resp.GetUserId(),
		DisplayName: resp.GetDisplayName(),
		AccessToken: resp.GetAccessToken(),
		ExpiresAt:   fromTimestamp(resp.GetExpiresAt()),
	}, nil
}

// Logout forgets the access token.
func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) requireLogin() error {
	if s.token() == "" {
		return ErrNotLoggedIn
	}
	return nil
}

func (s *GRPCClient) GetOwnKeys(ctx context.Context) (*models.KeyMaterial, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	resp, err := s.client.GetOwnKeys(ctx, &pb.GetOwnKeysRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.KeyMaterial{UserID: resp.GetUserId(), PublicKey: resp.GetPublicKey(), SealedSecretKey: resp.GetSealedSecretKey()}, nil
}

func (s *GRPCClient) GetPublicKey(ctx context.Context, userID string) (*models.PublicProfile, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	resp, err := s.client.GetPublicKey(ctx, &pb.GetPublicKeyRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	p := fromPBProfile(resp)
	return &p, nil
}

func (s *GRPCClient) OpenThread(ctx context.Context, listingID, counterpartID string) (*models.Thread, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	resp, err := s.client.OpenThread(ctx, &pb.OpenThreadRequest{ListingId: listingID, CounterpartId: counterpartID})
	if err != nil {
		return nil, s.mapError(err)
	}
	t := fromPBThread(resp)
	return &t, nil
}

func (s *GRPCClient) ListThreads(ctx context.Context) ([]models.ThreadPreview, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	resp, err := s.client.ListThreads(ctx, &pb.ListThreadsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.ThreadPreview, 0, len(resp.GetThreads()))
	for _, p := range resp.GetThreads() {
		out = append(out, fromPBPreview(p))
	}
	return out, nil
}

// AppendMessage stores an already encrypted message.
func (s *GRPCClient) AppendMessage(ctx context.Context, threadID, receiverID, ciphertext, nonce string) (*models.Message, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	req := &pb.SendMessageRequest{ThreadId: threadID, ReceiverId: receiverID, EncryptedContent: ciphertext, Nonce: nonce}

	resp, err := s.client.SendMessage(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	m := fromPBMessage(resp)
	return &m, nil
}

func (s *GRPCClient) ListMessages(ctx context.Context, threadID string) (*models.ThreadView, error) {
	if err := s.requireLogin(); err != nil {
		return nil, err
	}

	resp, err := s.client.ListMessages(ctx, &pb.ListMessagesRequest{ThreadId: threadID})
	if err != nil {
		return nil, s.mapError(err)
	}

	return fromPBThreadView(resp), nil
}

func (s *GRPCClient) MarkRead(ctx context.Context, threadID string) error {
	if err := s.requireLogin(); err != nil {
		return err
	}

	if _, err := s.client.MarkRead(ctx, &pb.MarkReadRequest{ThreadId: threadID}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, st.Message())
	case codes.PermissionDenied:
		return common.ErrorForbidden
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.FailedPrecondition:
		return common.ErrRecipientKeyMissing
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
