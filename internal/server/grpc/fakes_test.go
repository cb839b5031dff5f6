package grpc

import (
	"context"

	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/dmitrijs2005/carswipe/internal/server/services"
)

type fakeUsers struct {
	regResp   *models.User
	regErr    error
	loginResp *services.AccessToken
	loginErr  error
}

func (f *fakeUsers) Register(context.Context, string, string, string) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(context.Context, string, string) (*services.AccessToken, error) {
	return f.loginResp, f.loginErr
}

type fakeKeys struct {
	profile *models.PublicProfile
	own     *models.KeyMaterial
	err     error

	gotPrincipal, gotRequested string
}

func (f *fakeKeys) GetPublicKey(context.Context, string) (*models.PublicProfile, error) {
	return f.profile, f.err
}

func (f *fakeKeys) GetOwnKeys(_ context.Context, principalID, requestedID string) (*models.KeyMaterial, error) {
	f.gotPrincipal, f.gotRequested = principalID, requestedID
	return f.own, f.err
}

type fakeMessages struct {
	thread  *models.Thread
	msg     *models.Message
	view    *models.ThreadView
	list    []models.ThreadPreview
	err     error
	markErr error

	gotPrincipal string
}

func (f *fakeMessages) OpenThread(_ context.Context, principal, _, _ string) (*models.Thread, error) {
	f.gotPrincipal = principal
	return f.thread, f.err
}

func (f *fakeMessages) SendMessage(_ context.Context, principal, _, _, _, _ string) (*models.Message, error) {
	f.gotPrincipal = principal
	return f.msg, f.err
}

func (f *fakeMessages) ListMessages(_ context.Context, principal, _ string) (*models.ThreadView, error) {
	f.gotPrincipal = principal
	return f.view, f.err
}

func (f *fakeMessages) MarkRead(_ context.Context, principal, _ string) error {
	f.gotPrincipal = principal
	return f.markErr
}

func (f *fakeMessages) ListThreads(_ context.Context, principal string) ([]models.ThreadPreview, error) {
	f.gotPrincipal = principal
	return f.list, f.err
}
