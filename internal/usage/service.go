package usage

import (
	"context"
	"errors"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// bagTypeFinder is the slice of the bag types repo the usage service
// needs to price a recording.
type bagTypeFinder interface {
	FindByIDForOwner(ctx context.Context, id, userID uuid.UUID) (*models.BagType, error)
}

// inventoryDecrementer reduces a (car, bag type) inventory row, flooring
// at zero.
type inventoryDecrementer interface {
	DecrementQuantity(ctx context.Context, carID, bagTypeID uuid.UUID, by int) error
}

// RecordInput carries a validated usage payload.
type RecordInput struct {
	BagTypeID  uuid.UUID
	CarID      *uuid.UUID
	LocationID *uuid.UUID
	Quantity   int
}

// Service exposes bag usage recording and savings aggregation.
type Service interface {
	Record(ctx context.Context, userID uuid.UUID, input RecordInput) (*models.BagUsage, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]models.BagUsage, error)
	Savings(ctx context.Context, userID uuid.UUID) (Totals, error)
}

// ServiceParams groups dependencies for the usage service.
type ServiceParams struct {
	UsageRepo     *Repository
	BagTypeRepo   bagTypeFinder
	InventoryRepo inventoryDecrementer
}

type service struct {
	usageRepo     *Repository
	bagTypeRepo   bagTypeFinder
	inventoryRepo inventoryDecrementer
}

// NewService builds a usage service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UsageRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "usage repo is required")
	}
	if params.BagTypeRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "bag types repo is required")
	}
	if params.InventoryRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory repo is required")
	}
	return &service{
		usageRepo:     params.UsageRepo,
		bagTypeRepo:   params.BagTypeRepo,
		inventoryRepo: params.InventoryRepo,
	}, nil
}

// Record prices the usage at the bag type's current rate, inserts the
// usage row, and then walks the matching car inventory down by the used
// quantity. The two writes are intentionally independent: a failed
// decrement leaves the usage row in place.
func (s *service) Record(ctx context.Context, userID uuid.UUID, input RecordInput) (*models.BagUsage, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.BagTypeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bag type id is required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	bagType, err := s.bagTypeRepo.FindByIDForOwner(ctx, input.BagTypeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "bag type not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bag type")
	}

	// Savings are frozen at recording time; later price edits never
	// rewrite history.
	savings := bagType.PricePerBag.Mul(decimal.NewFromInt(int64(input.Quantity)))

	record := &models.BagUsage{
		ID:            uuid.New(),
		UserID:        userID,
		CarID:         input.CarID,
		BagTypeID:     input.BagTypeID,
		LocationID:    input.LocationID,
		Quantity:      input.Quantity,
		SavingsAmount: savings,
	}

	stored, err := s.usageRepo.Insert(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record bag usage")
	}

	if input.CarID != nil {
		if err := s.inventoryRepo.DecrementQuantity(ctx, *input.CarID, input.BagTypeID, input.Quantity); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decrement car inventory")
		}
	}

	return stored, nil
}

// Recent returns the caller's usage history, most recent first.
func (s *service) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]models.BagUsage, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	records, err := s.usageRepo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bag usage")
	}
	return records, nil
}

// Savings returns the caller's running totals.
func (s *service) Savings(ctx context.Context, userID uuid.UUID) (Totals, error) {
	if userID == uuid.Nil {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	totals, err := s.usageRepo.SumSavings(ctx, userID)
	if err != nil {
		return Totals{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate savings")
	}
	return totals, nil
}
