package social

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists social share records.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, share *models.SocialShare) (*models.SocialShare, error) {
	if err := r.db.WithContext(ctx).Create(share).Error; err != nil {
		return nil, err
	}
	return share, nil
}

func (r *Repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.SocialShare, error) {
	var shares []models.SocialShare
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("shared_at DESC").
		Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}
