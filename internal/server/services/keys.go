package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/repomanager"
)

// KeyService gives out key material. Public keys are visible to any
// authenticated principal; the sealed secret only to its owner.
type KeyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewKeyService(db *sql.DB, m repomanager.RepositoryManager) *KeyService {
	return &KeyService{db: db, repomanager: m}
}

// GetPublicKey returns userID's public profile. A user without a public key
// is reported as not found.
func (s *KeyService) GetPublicKey(ctx context.Context, userID string) (*models.PublicProfile, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.PublicKey == "" {
		return nil, common.ErrorNotFound
	}
	return &models.PublicProfile{UserID: user.ID, DisplayName: user.DisplayName, PublicKey: user.PublicKey}, nil
}

// GetOwnKeys returns the sealed key material of requestedID, which must be
// the authenticated principal.
func (s *KeyService) GetOwnKeys(ctx context.Context, principalID, requestedID string) (*models.KeyMaterial, error) {
	if principalID == "" || principalID != requestedID {
		return nil, common.ErrorForbidden
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	if user.PublicKey == "" || len(user.SealedSecretKey) == 0 {
		return nil, common.ErrorNotFound
	}

	return &models.KeyMaterial{UserID: user.ID, PublicKey: user.PublicKey, SealedSecretKey: user.SealedSecretKey}, nil
}
