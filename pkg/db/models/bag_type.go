package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BagType is a user-configured reusable bag category with its per-bag value.
type BagType struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index:bag_types_user_id_idx" json:"userId"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	PricePerBag decimal.Decimal `gorm:"column:price_per_bag;type:numeric(10,2);not null" json:"pricePerBag"`
	Color       string          `gorm:"column:color;not null" json:"color"`
	Icon        string          `gorm:"column:icon;not null" json:"icon"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
