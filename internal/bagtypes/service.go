package bagtypes

import (
	"context"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput carries a validated bag type payload. PricePerBag arrives as
// a string so clients can send exact decimal values.
type CreateInput struct {
	Name        string
	PricePerBag string
	Color       string
	Icon        string
}

// Service exposes business rules for bag type management.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.BagType, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.BagType, error)
	Delete(ctx context.Context, userID, bagTypeID uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds a bag types service with the required dependencies.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "bag types repo is required")
	}
	return &service{repo: repo}, nil
}

// Create validates the price and persists a new bag type for the caller.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*models.BagType, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	price, err := decimal.NewFromString(input.PricePerBag)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid price per bag")
	}
	if price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price per bag must be non-negative")
	}

	bagType := &models.BagType{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		PricePerBag: price,
		Color:       input.Color,
		Icon:        input.Icon,
	}

	created, err := s.repo.Create(ctx, bagType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create bag type")
	}
	return created, nil
}

// ListByOwner returns the caller's bag types.
func (s *service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.BagType, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	bagTypes, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bag types")
	}
	return bagTypes, nil
}

// Delete removes an owned bag type; deleting someone else's is a silent no-op.
func (s *service) Delete(ctx context.Context, userID, bagTypeID uuid.UUID) error {
	if userID == uuid.Nil || bagTypeID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and bag type id are required")
	}
	if err := s.repo.DeleteByOwner(ctx, bagTypeID, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete bag type")
	}
	return nil
}
