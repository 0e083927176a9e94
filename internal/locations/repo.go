package locations

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates location persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a locations repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new location.
func (r *Repository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

// ListByOwner returns the caller's locations, newest first.
func (r *Repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	var locations []models.Location
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindByIDForOwner loads a location only when the caller owns it.
func (r *Repository) FindByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// SetActive flips the reminder flag for an owned location.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Location{}).
		Where("id = ?", id).
		UpdateColumn("is_active", active).Error
}

// DeleteByOwner removes the caller's location.
func (r *Repository) DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Location{}).Error
}
