package inventory

import (
	"context"
	"testing"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupInventoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS car_bag_inventory (
  id TEXT PRIMARY KEY,
  car_id TEXT NOT NULL,
  bag_type_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  low_stock_threshold INTEGER NOT NULL DEFAULT 2,
  updated_at DATETIME,
  UNIQUE (car_id, bag_type_id)
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec("DELETE FROM car_bag_inventory").Error)

	return db
}

func TestRepositoryUpsertReplacesExistingPair(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	carID := uuid.New()
	bagTypeID := uuid.New()

	first, err := repo.Upsert(ctx, &models.CarBagInventory{
		ID:                uuid.New(),
		CarID:             carID,
		BagTypeID:         bagTypeID,
		Quantity:          5,
		LowStockThreshold: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 5, first.Quantity)

	second, err := repo.Upsert(ctx, &models.CarBagInventory{
		ID:                uuid.New(),
		CarID:             carID,
		BagTypeID:         bagTypeID,
		Quantity:          12,
		LowStockThreshold: 4,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID, "conflicting pair must update in place")
	require.Equal(t, 12, second.Quantity)
	require.Equal(t, 4, second.LowStockThreshold)

	rows, err := repo.ListForCar(ctx, carID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestRepositoryDecrementQuantityFloorsAtZero(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	carID := uuid.New()
	bagTypeID := uuid.New()

	_, err := repo.Upsert(ctx, &models.CarBagInventory{
		ID:        uuid.New(),
		CarID:     carID,
		BagTypeID: bagTypeID,
		Quantity:  3,
	})
	require.NoError(t, err)

	require.NoError(t, repo.DecrementQuantity(ctx, carID, bagTypeID, 2))
	row, err := repo.Find(ctx, carID, bagTypeID)
	require.NoError(t, err)
	require.Equal(t, 1, row.Quantity)

	// Using more bags than are stocked clamps to zero instead of going
	// negative.
	require.NoError(t, repo.DecrementQuantity(ctx, carID, bagTypeID, 5))
	row, err = repo.Find(ctx, carID, bagTypeID)
	require.NoError(t, err)
	require.Equal(t, 0, row.Quantity)
}

func TestRepositoryDecrementQuantityMissingRowIsNoop(t *testing.T) {
	db := setupInventoryTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.DecrementQuantity(ctx, uuid.New(), uuid.New(), 3))
}
