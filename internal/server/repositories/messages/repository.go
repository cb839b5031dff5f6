package messages

import (
	"context"

	"github.com/dmitrijs2005/carswipe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	ListByThread(ctx context.Context, threadID string) ([]models.Message, error)
}
