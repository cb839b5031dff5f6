package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/logging"
	pb "github.com/dmitrijs2005/carswipe/internal/proto"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/dmitrijs2005/carswipe/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func authed(userID string) context.Context {
	return context.WithValue(context.Background(), UserIDKey, userID)
}

func TestPing_OK(t *testing.T) {
	s := newTestServer("k")
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestRegisterUser(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, &fakeUsers{regResp: &models.User{ID: "u1", PublicKey: "pk"}}, &fakeKeys{}, &fakeMessages{}, nil, "k")
	resp, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Email: "a@example.com", DisplayName: "A", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.GetUserId())
	assert.Equal(t, "pk", resp.PublicKey)

	s = NewGRPCServer("", logging.Nop{}, &fakeUsers{regErr: common.ErrorAlreadyExists}, &fakeKeys{}, &fakeMessages{}, nil, "k")
	_, err = s.RegisterUser(context.Background(), &pb.RegisterUserRequest{})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestLogin(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	s := NewGRPCServer("", logging.Nop{}, &fakeUsers{loginResp: &services.AccessToken{Token: "A", ExpiresAt: exp, UserID: "u1", DisplayName: "Buyer"}}, &fakeKeys{}, &fakeMessages{}, nil, "k")
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a", Password: "b"})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.AccessToken)
	assert.Equal(t, "Buyer", resp.DisplayName)
	assert.True(t, exp.Equal(resp.GetExpiresAt().AsTime()))

	s = NewGRPCServer("", logging.Nop{}, &fakeUsers{loginErr: common.ErrorUnauthorized}, &fakeKeys{}, &fakeMessages{}, nil, "k")
	_, err = s.Login(context.Background(), &pb.LoginRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGetOwnKeys_DefaultsToPrincipal(t *testing.T) {
	keys := &fakeKeys{own: &models.KeyMaterial{UserID: "me", PublicKey: "pk", SealedSecretKey: []byte("sealed")}}
	s := NewGRPCServer("", logging.Nop{}, &fakeUsers{}, keys, &fakeMessages{}, nil, "k")

	resp, err := s.GetOwnKeys(authed("me"), &pb.GetOwnKeysRequest{})
	require.NoError(t, err)
	assert.Equal(t, []byte("sealed"), resp.SealedSecretKey)
	assert.Equal(t, "me", keys.gotPrincipal)
	assert.Equal(t, "me", keys.gotRequested)

	_, err = s.GetOwnKeys(authed("me"), &pb.GetOwnKeysRequest{UserId: "someone-else"})
	require.NoError(t, err)
	assert.Equal(t, "someone-else", keys.gotRequested, "the service decides, the handler forwards")

	_, err = s.GetOwnKeys(context.Background(), &pb.GetOwnKeysRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrorNotFound, codes.NotFound},
		{fmt.Errorf("%w: cannot message yourself", common.ErrorValidation), codes.InvalidArgument},
		{common.ErrorUnauthorized, codes.Unauthenticated},
		{common.ErrorForbidden, codes.PermissionDenied},
		{common.ErrorAlreadyExists, codes.AlreadyExists},
		{common.ErrRecipientKeyMissing, codes.FailedPrecondition},
		{errors.New("db down"), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			msgs := &fakeMessages{err: tt.err}
			s := NewGRPCServer("", logging.Nop{}, &fakeUsers{}, &fakeKeys{}, msgs, nil, "k")

			_, err := s.SendMessage(authed("me"), &pb.SendMessageRequest{ThreadId: "t1"})
			assert.Equal(t, tt.want, status.Code(err))
			if tt.want == codes.Internal {
				assert.Equal(t, "internal error", status.Convert(err).Message(), "internal details must not leak")
			}
		})
	}
}

func TestValidationMessageIsForwarded(t *testing.T) {
	msgs := &fakeMessages{err: fmt.Errorf("%w: cannot message yourself", common.ErrorValidation)}
	s := NewGRPCServer("", logging.Nop{}, &fakeUsers{}, &fakeKeys{}, msgs, nil, "k")

	_, err := s.OpenThread(authed("me"), &pb.OpenThreadRequest{ListingId: "l1", CounterpartId: "me"})
	assert.Contains(t, status.Convert(err).Message(), "cannot message yourself")
}

func TestThreadHandlers_UsePrincipalFromContext(t *testing.T) {
	now := time.Now()
	msgs := &fakeMessages{
		thread: &models.Thread{ID: "t1", ListingID: "l1", CreatedAt: now, UpdatedAt: now},
		msg:    &models.Message{ID: "m1", ThreadID: "t1", SenderID: "buyer", Seq: 3},
		view: &models.ThreadView{
			Thread:       models.Thread{ID: "t1"},
			Participants: []models.Participant{{UserID: "buyer"}, {UserID: "seller", PublicKey: "pkS"}},
			Messages:     []models.Message{{ID: "m1"}, {ID: "m2"}},
		},
		list: []models.ThreadPreview{{Thread: models.Thread{ID: "t1"}, UnreadCount: 3, Preview: common.EncryptedPreview}},
	}
	s := NewGRPCServer("", logging.Nop{}, &fakeUsers{}, &fakeKeys{}, msgs, nil, "k")
	ctx := authed("buyer")

	th, err := s.OpenThread(ctx, &pb.OpenThreadRequest{ListingId: "l1", CounterpartId: "seller"})
	require.NoError(t, err)
	assert.Equal(t, "t1", th.GetId())
	assert.True(t, now.Equal(th.GetCreatedAt().AsTime()))
	assert.Equal(t, "buyer", msgs.gotPrincipal)

	m, err := s.SendMessage(ctx, &pb.SendMessageRequest{ThreadId: "t1", ReceiverId: "seller"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), m.Seq)

	view, err := s.ListMessages(ctx, &pb.ListMessagesRequest{ThreadId: "t1"})
	require.NoError(t, err)
	assert.Len(t, view.Messages, 2)
	assert.Equal(t, "pkS", view.Participants[1].PublicKey)
	assert.Nil(t, view.Participants[1].GetLastReadAt(), "zero times stay unset")

	list, err := s.ListThreads(ctx, &pb.ListThreadsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Threads, 1)
	assert.Equal(t, int32(3), list.Threads[0].GetUnreadCount())

	_, err = s.MarkRead(ctx, &pb.MarkReadRequest{ThreadId: "t1"})
	require.NoError(t, err)

	msgs.markErr = common.ErrorNotFound
	_, err = s.MarkRead(ctx, &pb.MarkReadRequest{ThreadId: "t1"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
