package cars

import (
	"context"
	"errors"
	"strings"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateInput carries a validated car payload.
type CreateInput struct {
	Name  string
	Model *string
}

// Service exposes business rules for car management.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.Car, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Car, error)
	GetOwned(ctx context.Context, userID, carID uuid.UUID) (*models.Car, error)
	Delete(ctx context.Context, userID, carID uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds a cars service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cars repo is required")
	}
	return &service{repo: repo}, nil
}

// Create persists a new car for the caller.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.Car, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "car name is required")
	}

	car := &models.Car{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Model:  input.Model,
	}

	created, err := s.repo.Create(ctx, car)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create car")
	}
	return created, nil
}

// ListByOwner returns the caller's cars, newest first.
func (s *service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Car, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	cars, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cars")
	}
	return cars, nil
}

// GetOwned loads a car and enforces the caller's ownership.
func (s *service) GetOwned(ctx context.Context, userID, carID uuid.UUID) (*models.Car, error) {
	if userID == uuid.Nil || carID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and car id are required")
	}
	car, err := s.repo.FindByIDForOwner(ctx, carID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "car not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load car")
	}
	return car, nil
}

// Delete removes an owned car; deleting someone else's is a silent no-op.
func (s *service) Delete(ctx context.Context, userID, carID uuid.UUID) error {
	if userID == uuid.Nil || carID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and car id are required")
	}
	if err := s.repo.DeleteByOwner(ctx, carID, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete car")
	}
	return nil
}
