package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLowStockThreshold applies when a client omits the threshold.
const DefaultLowStockThreshold = 2

// CarBagInventory tracks how many bags of one type live in one car.
// One row per (car, bag type) pair.
type CarBagInventory struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CarID             uuid.UUID `gorm:"column:car_id;type:uuid;not null;uniqueIndex:car_bag_inventory_car_bag_key" json:"carId"`
	BagTypeID         uuid.UUID `gorm:"column:bag_type_id;type:uuid;not null;uniqueIndex:car_bag_inventory_car_bag_key" json:"bagTypeId"`
	Quantity          int       `gorm:"column:quantity;not null;default:0" json:"quantity"`
	LowStockThreshold int       `gorm:"column:low_stock_threshold;not null;default:2" json:"lowStockThreshold"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (CarBagInventory) TableName() string {
	return "car_bag_inventory"
}

// IsLowStock reports whether the row has dropped to its reorder point.
func (i CarBagInventory) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
