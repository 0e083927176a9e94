package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BagUsage records one shopping trip's bag use. SavingsAmount is computed
// from the bag type's price at recording time and is never recalculated.
type BagUsage struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index:bag_usage_user_id_idx" json:"userId"`
	CarID         *uuid.UUID      `gorm:"column:car_id;type:uuid" json:"carId,omitempty"`
	BagTypeID     uuid.UUID       `gorm:"column:bag_type_id;type:uuid;not null" json:"bagTypeId"`
	LocationID    *uuid.UUID      `gorm:"column:location_id;type:uuid" json:"locationId,omitempty"`
	Quantity      int             `gorm:"column:quantity;not null" json:"quantity"`
	SavingsAmount decimal.Decimal `gorm:"column:savings_amount;type:numeric(10,2);not null" json:"savingsAmount"`
	UsedAt        time.Time       `gorm:"column:used_at;autoCreateTime" json:"usedAt"`
}

func (BagUsage) TableName() string {
	return "bag_usage"
}
