package threads

import (
	"context"

	"github.com/dmitrijs2005/carswipe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, thread *models.Thread) (*models.Thread, error)
	AddParticipant(ctx context.Context, threadID, userID string) error
	FindByListingAndParticipants(ctx context.Context, listingID, userA, userB string) (*models.Thread, error)
	GetByID(ctx context.Context, threadID string) (*models.Thread, error)
	ListParticipants(ctx context.Context, threadID string) ([]models.Participant, error)
	Touch(ctx context.Context, threadID string) error
	MarkRead(ctx context.Context, threadID, userID string) error
	ListForUser(ctx context.Context, userID string) ([]models.ThreadPreview, error)
}
