package models

import (
	"time"

	"github.com/google/uuid"
)

// Car is a vehicle the user stocks with reusable bags.
type Car struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:cars_user_id_idx" json:"userId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Model     *string   `gorm:"column:model" json:"model,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
