package client

import (
	"context"

	"github.com/dmitrijs2005/carswipe/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, email, displayName, password string) (string, error)
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout()
	GetOwnKeys(ctx context.Context) (*models.KeyMaterial, error)
	GetPublicKey(ctx context.Context, userID string) (*models.PublicProfile, error)
	OpenThread(ctx context.Context, listingID, counterpartID string) (*models.Thread, error)
	ListThreads(ctx context.Context) ([]models.ThreadPreview, error)
	AppendMessage(ctx context.Context, threadID, receiverID, ciphertext, nonce string) (*models.Message, error)
	ListMessages(ctx context.Context, threadID string) (*models.ThreadView, error)
	MarkRead(ctx context.Context, threadID string) error
}
