package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder radius bounds in meters.
const (
	MinReminderRadius     = 50
	MaxReminderRadius     = 1000
	DefaultReminderRadius = 300
)

// Location is a saved shopping spot used for geofenced reminders.
type Location struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:locations_user_id_idx" json:"userId"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	Address        string    `gorm:"column:address;not null" json:"address"`
	Latitude       *float64  `gorm:"column:latitude;type:numeric(10,8)" json:"latitude,omitempty"`
	Longitude      *float64  `gorm:"column:longitude;type:numeric(11,8)" json:"longitude,omitempty"`
	IsActive       bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	ReminderRadius int       `gorm:"column:reminder_radius;not null;default:300" json:"reminderRadius"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
