package models

import (
	"time"

	"github.com/ecobagapp/ecobag-backend/pkg/enums"
	"github.com/google/uuid"
)

// SocialShare is an append-only log of outbound share events.
type SocialShare struct {
	ID       uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID   uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index:social_shares_user_id_idx" json:"userId"`
	Platform enums.SharePlatform `gorm:"column:platform;not null" json:"platform"`
	Content  string              `gorm:"column:content;type:text;not null" json:"content"`
	SharedAt time.Time           `gorm:"column:shared_at;autoCreateTime" json:"sharedAt"`
}
