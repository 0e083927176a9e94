package users

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the user or refreshes the profile columns when the id
// already exists. The id comes from the identity provider and is stable
// for the account's lifetime.
func (r *Repository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "first_name", "last_name", "profile_image_url", "updated_at",
			}),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}

	var stored models.User
	if err := r.db.WithContext(ctx).First(&stored, "id = ?", user.ID).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// FindByID loads a user by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves the user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// SetSetupComplete marks onboarding as finished and returns the fresh row.
func (r *Repository) SetSetupComplete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("has_completed_setup", true).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// MarkPaidAccess flips has_paid_access and stores the payment provider's
// customer reference. The guard on has_paid_access keeps the flag
// monotonic and makes webhook replays no-ops.
func (r *Repository) MarkPaidAccess(ctx context.Context, id uuid.UUID, customerRef string) error {
	updates := map[string]any{"has_paid_access": true}
	if customerRef != "" {
		updates["stripe_customer_id"] = customerRef
	}
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND has_paid_access = ?", id, false).
		UpdateColumns(updates).Error
}
