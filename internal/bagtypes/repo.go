package bagtypes

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates bag type persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a bag types repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new bag type.
func (r *Repository) Create(ctx context.Context, bagType *models.BagType) (*models.BagType, error) {
	if err := r.db.WithContext(ctx).Create(bagType).Error; err != nil {
		return nil, err
	}
	return bagType, nil
}

// ListByOwner returns the caller's bag types.
func (r *Repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.BagType, error) {
	var bagTypes []models.BagType
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&bagTypes).Error; err != nil {
		return nil, err
	}
	return bagTypes, nil
}

// FindByIDForOwner loads a bag type only when the caller owns it.
func (r *Repository) FindByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*models.BagType, error) {
	var bagType models.BagType
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&bagType).Error; err != nil {
		return nil, err
	}
	return &bagType, nil
}

// DeleteByOwner removes the caller's bag type; rows owned by other users
// are untouched.
func (r *Repository) DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.BagType{}).Error
}
