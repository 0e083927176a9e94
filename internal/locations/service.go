package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateInput carries a validated location payload. A nil ReminderRadius
// falls back to the default; values outside [50,1000] meters are rejected.
type CreateInput struct {
	Name           string
	Address        string
	Latitude       *float64
	Longitude      *float64
	ReminderRadius *int
}

// Service exposes business rules for saved shopping locations.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.Location, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Location, error)
	ToggleActive(ctx context.Context, userID, locationID uuid.UUID) (*models.Location, error)
	Delete(ctx context.Context, userID, locationID uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds a locations service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "locations repo is required")
	}
	return &service{repo: repo}, nil
}

// Create persists a new location for the caller.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.Location, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location name is required")
	}
	address := strings.TrimSpace(input.Address)
	if address == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location address is required")
	}

	radius := models.DefaultReminderRadius
	if input.ReminderRadius != nil {
		radius = *input.ReminderRadius
	}
	if radius < models.MinReminderRadius || radius > models.MaxReminderRadius {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf(
			"reminder radius must be between %d and %d meters",
			models.MinReminderRadius, models.MaxReminderRadius,
		))
	}

	location := &models.Location{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Address:        address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		IsActive:       true,
		ReminderRadius: radius,
	}

	created, err := s.repo.Create(ctx, location)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create location")
	}
	return created, nil
}

// ListByOwner returns the caller's locations, newest first.
func (s *service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	locations, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list locations")
	}
	return locations, nil
}

// ToggleActive flips the reminder flag on an owned location.
func (s *service) ToggleActive(ctx context.Context, userID, locationID uuid.UUID) (*models.Location, error) {
	location, err := s.repo.FindByIDForOwner(ctx, locationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "location not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load location")
	}

	if err := s.repo.SetActive(ctx, location.ID, !location.IsActive); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "toggle location")
	}
	location.IsActive = !location.IsActive
	return location, nil
}

// Delete removes an owned location; deleting someone else's is a silent no-op.
func (s *service) Delete(ctx context.Context, userID, locationID uuid.UUID) error {
	if userID == uuid.Nil || locationID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and location id are required")
	}
	if err := s.repo.DeleteByOwner(ctx, locationID, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete location")
	}
	return nil
}
