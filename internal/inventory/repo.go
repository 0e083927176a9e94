package inventory

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsulates car bag inventory persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an inventory repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert writes the inventory row keyed by (car_id, bag_type_id): an
// existing pair gets its quantity/threshold replaced, otherwise a new
// row is inserted.
func (r *Repository) Upsert(ctx context.Context, row *models.CarBagInventory) (*models.CarBagInventory, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "car_id"}, {Name: "bag_type_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"quantity", "low_stock_threshold", "updated_at",
			}),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}

	return r.Find(ctx, row.CarID, row.BagTypeID)
}

// ListForCar returns every inventory row of one car.
func (r *Repository) ListForCar(ctx context.Context, carID uuid.UUID) ([]models.CarBagInventory, error) {
	var rows []models.CarBagInventory
	if err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Find loads the row for one (car, bag type) pair.
func (r *Repository) Find(ctx context.Context, carID, bagTypeID uuid.UUID) (*models.CarBagInventory, error) {
	var row models.CarBagInventory
	if err := r.db.WithContext(ctx).
		Where("car_id = ? AND bag_type_id = ?", carID, bagTypeID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DecrementQuantity reduces the pair's quantity by the given amount,
// flooring at zero. Excess usage clamps instead of failing, and a missing
// row is a no-op.
func (r *Repository) DecrementQuantity(ctx context.Context, carID, bagTypeID uuid.UUID, by int) error {
	return r.db.WithContext(ctx).
		Model(&models.CarBagInventory{}).
		Where("car_id = ? AND bag_type_id = ?", carID, bagTypeID).
		UpdateColumn("quantity", gorm.Expr(
			"CASE WHEN quantity > ? THEN quantity - ? ELSE 0 END", by, by,
		)).Error
}
