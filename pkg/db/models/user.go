package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the canonical identity entity. Rows are upserted from the auth
// provider's claims, never created by request bodies.
type User struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email             string    `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	FirstName         *string   `gorm:"column:first_name" json:"firstName,omitempty"`
	LastName          *string   `gorm:"column:last_name" json:"lastName,omitempty"`
	ProfileImageURL   *string   `gorm:"column:profile_image_url" json:"profileImageUrl,omitempty"`
	HasCompletedSetup bool      `gorm:"column:has_completed_setup;not null;default:false" json:"hasCompletedSetup"`
	HasPaidAccess     bool      `gorm:"column:has_paid_access;not null;default:false" json:"hasPaidAccess"`
	StripeCustomerID  *string   `gorm:"column:stripe_customer_id" json:"stripeCustomerId,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
