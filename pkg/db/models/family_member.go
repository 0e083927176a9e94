package models

import (
	"time"

	"github.com/ecobagapp/ecobag-backend/pkg/enums"
	"github.com/google/uuid"
)

// FamilyMember links an inviting user to an invited one. Status only ever
// moves from pending to accepted or declined.
type FamilyMember struct {
	ID         uuid.UUID                `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InviterID  uuid.UUID                `gorm:"column:inviter_id;type:uuid;not null;index:family_members_inviter_id_idx" json:"inviterId"`
	MemberID   uuid.UUID                `gorm:"column:member_id;type:uuid;not null;index:family_members_member_id_idx" json:"memberId"`
	Status     enums.FamilyInviteStatus `gorm:"column:status;not null;default:pending" json:"status"`
	InvitedAt  time.Time                `gorm:"column:invited_at;autoCreateTime" json:"invitedAt"`
	AcceptedAt *time.Time               `gorm:"column:accepted_at" json:"acceptedAt,omitempty"`
}
