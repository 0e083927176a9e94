package family

import (
	"context"
	"time"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/ecobagapp/ecobag-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates family membership persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a family repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new invite row.
func (r *Repository) Create(ctx context.Context, member *models.FamilyMember) (*models.FamilyMember, error) {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

// ListByInviter returns the invites the user has sent.
func (r *Repository) ListByInviter(ctx context.Context, inviterID uuid.UUID) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	if err := r.db.WithContext(ctx).
		Where("inviter_id = ?", inviterID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListAcceptedForUser returns accepted links where the user is on either
// side of the invite.
func (r *Repository) ListAcceptedForUser(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	if err := r.db.WithContext(ctx).
		Where("(inviter_id = ? OR member_id = ?) AND status = ?",
			userID, userID, enums.FamilyInviteStatusAccepted).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindByID loads one invite.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.FamilyMember, error) {
	var member models.FamilyMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateStatus transitions an invite and stamps accepted_at when the new
// status is accepted.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FamilyInviteStatus, at time.Time) error {
	updates := map[string]any{"status": status}
	if status == enums.FamilyInviteStatusAccepted {
		updates["accepted_at"] = at
	}
	return r.db.WithContext(ctx).
		Model(&models.FamilyMember{}).
		Where("id = ?", id).
		UpdateColumns(updates).Error
}
