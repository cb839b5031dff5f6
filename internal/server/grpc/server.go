// Package grpc exposes the messaging services over the Messenger gRPC
// service generated in internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/carswipe/internal/logging"
	pb "github.com/dmitrijs2005/carswipe/internal/proto"
	"github.com/dmitrijs2005/carswipe/internal/server/metrics"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/dmitrijs2005/carswipe/internal/server/services"
	"google.golang.org/grpc"
)

type UserService interface {
	Register(ctx context.Context, email, displayName, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.AccessToken, error)
}

type KeyService interface {
	GetPublicKey(ctx context.Context, userID string) (*models.PublicProfile, error)
	GetOwnKeys(ctx context.Context, principalID, requestedID string) (*models.KeyMaterial, error)
}

type MessageService interface {
	OpenThread(ctx context.Context, principal, listingID, counterpartID string) (*models.Thread, error)
	SendMessage(ctx context.Context, principal, threadID, receiverID, ciphertext, nonce string) (*models.Message, error)
	ListMessages(ctx context.Context, principal, threadID string) (*models.ThreadView, error)
	MarkRead(ctx context.Context, principal, threadID string) error
	ListThreads(ctx context.Context, principal string) ([]models.ThreadPreview, error)
}

type GRPCServer struct {
	pb.UnimplementedMessengerServer

	address   string
	users     UserService
	keys      KeyService
	messages  MessageService
	metrics   *metrics.Metrics
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.MessengerServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, us UserService, ks KeyService, ms MessageService, mx *metrics.Metrics, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		keys:      ks,
		messages:  ms,
		metrics:   mx,
		jwtSecret: []byte(secretKey),
	}
}

// NewServer builds a *grpc.Server with the interceptor chain and the
// Messenger service registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.metrics.UnaryInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterMessengerServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
