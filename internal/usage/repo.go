package usage

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultRecentLimit bounds the recent-usage listing when no limit is given.
const DefaultRecentLimit = 20

// Totals is the aggregate savings result for one owner.
type Totals struct {
	TotalSavings   decimal.Decimal `json:"totalSavings"`
	TotalBagsSaved int64           `json:"totalBagsSaved"`
}

// Repository encapsulates bag usage persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a usage repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores one usage record.
func (r *Repository) Insert(ctx context.Context, usage *models.BagUsage) (*models.BagUsage, error) {
	if err := r.db.WithContext(ctx).Create(usage).Error; err != nil {
		return nil, err
	}
	return usage, nil
}

// ListRecent returns the caller's usage records, most recent first.
func (r *Repository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.BagUsage, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var records []models.BagUsage
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("used_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// SumSavings aggregates the caller's recorded savings. A user with no
// usage rows gets zero totals, not an error.
func (r *Repository) SumSavings(ctx context.Context, userID uuid.UUID) (Totals, error) {
	var row struct {
		TotalSavings   decimal.NullDecimal
		TotalBagsSaved *int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.BagUsage{}).
		Select("SUM(savings_amount) AS total_savings, SUM(quantity) AS total_bags_saved").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return Totals{}, err
	}

	totals := Totals{TotalSavings: decimal.Zero}
	if row.TotalSavings.Valid {
		totals.TotalSavings = row.TotalSavings.Decimal
	}
	if row.TotalBagsSaved != nil {
		totals.TotalBagsSaved = *row.TotalBagsSaved
	}
	return totals, nil
}
