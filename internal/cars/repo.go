package cars

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates car persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cars repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new car.
func (r *Repository) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	if err := r.db.WithContext(ctx).Create(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}

// ListByOwner returns the caller's cars, newest first.
func (r *Repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Car, error) {
	var cars []models.Car
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// FindByIDForOwner loads a car only when the caller owns it.
func (r *Repository) FindByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// DeleteByOwner removes the caller's car.
func (r *Repository) DeleteByOwner(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Car{}).Error
}
