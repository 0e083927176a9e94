package inventory

import (
	"context"
	"errors"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	pkgerrors "github.com/ecobagapp/ecobag-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// carGetter is the slice of the cars service inventory needs for
// ownership checks.
type carGetter interface {
	GetOwned(ctx context.Context, userID, carID uuid.UUID) (*models.Car, error)
}

// SetInput carries a validated inventory upsert payload.
type SetInput struct {
	BagTypeID         uuid.UUID
	Quantity          int
	LowStockThreshold *int
}

// RowDTO is an inventory row plus its derived stock state.
type RowDTO struct {
	models.CarBagInventory
	LowStock bool `json:"lowStock"`
}

// Service exposes business rules for per-car bag inventory.
type Service interface {
	Set(ctx context.Context, userID, carID uuid.UUID, input SetInput) (*RowDTO, error)
	ListForCar(ctx context.Context, userID, carID uuid.UUID) ([]RowDTO, error)
}

type service struct {
	repo *Repository
	cars carGetter
}

// NewService builds an inventory service with the required dependencies.
func NewService(repo *Repository, cars carGetter) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inventory repo is required")
	}
	if cars == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cars service is required")
	}
	return &service{repo: repo, cars: cars}, nil
}

// Set upserts the (car, bag type) inventory row after confirming the
// caller owns the car.
func (s *service) Set(ctx context.Context, userID, carID uuid.UUID, input SetInput) (*RowDTO, error) {
	if input.BagTypeID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "bag type id is required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be non-negative")
	}
	if _, err := s.cars.GetOwned(ctx, userID, carID); err != nil {
		return nil, err
	}

	threshold := models.DefaultLowStockThreshold
	if input.LowStockThreshold != nil {
		threshold = *input.LowStockThreshold
	}

	row := &models.CarBagInventory{
		ID:                uuid.New(),
		CarID:             carID,
		BagTypeID:         input.BagTypeID,
		Quantity:          input.Quantity,
		LowStockThreshold: threshold,
	}

	stored, err := s.repo.Upsert(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set car inventory")
	}
	return toRowDTO(stored), nil
}

// ListForCar returns the car's inventory rows with their stock state.
func (s *service) ListForCar(ctx context.Context, userID, carID uuid.UUID) ([]RowDTO, error) {
	if _, err := s.cars.GetOwned(ctx, userID, carID); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListForCar(ctx, carID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []RowDTO{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list car inventory")
	}

	dtos := make([]RowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, *toRowDTO(&row))
	}
	return dtos, nil
}

func toRowDTO(row *models.CarBagInventory) *RowDTO {
	return &RowDTO{
		CarBagInventory: *row,
		LowStock:        row.IsLowStock(),
	}
}
