package usage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ecobagapp/ecobag-backend/internal/bagtypes"
	"github.com/ecobagapp/ecobag-backend/internal/cars"
	"github.com/ecobagapp/ecobag-backend/internal/inventory"
)

// setupFlowTestDB provisions every table the shopping-trip flow touches.
func setupFlowTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS bag_types (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price_per_bag NUMERIC NOT NULL,
  color TEXT NOT NULL,
  icon TEXT NOT NULL,
  created_at DATETIME
);
CREATE TABLE IF NOT EXISTS cars (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  name TEXT NOT NULL,
  model TEXT,
  created_at DATETIME
);
CREATE TABLE IF NOT EXISTS car_bag_inventory (
  id TEXT PRIMARY KEY,
  car_id TEXT NOT NULL,
  bag_type_id TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  low_stock_threshold INTEGER NOT NULL DEFAULT 2,
  updated_at DATETIME,
  UNIQUE (car_id, bag_type_id)
);
CREATE TABLE IF NOT EXISTS bag_usage (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  car_id TEXT,
  bag_type_id TEXT NOT NULL,
  location_id TEXT,
  quantity INTEGER NOT NULL,
  savings_amount NUMERIC NOT NULL,
  used_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	for _, table := range []string{"bag_types", "cars", "car_bag_inventory", "bag_usage"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	return db
}

// TestShoppingTripFlow runs the full path a trip takes through real
// repositories: create a bag type, stock a car, record usage, and check
// that savings freeze and inventory drains.
func TestShoppingTripFlow(t *testing.T) {
	db := setupFlowTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	bagTypesRepo := bagtypes.NewRepository(db)
	bagTypesSvc, err := bagtypes.NewService(bagTypesRepo)
	require.NoError(t, err)

	carsSvc, err := cars.NewService(cars.NewRepository(db))
	require.NoError(t, err)

	inventoryRepo := inventory.NewRepository(db)
	inventorySvc, err := inventory.NewService(inventoryRepo, carsSvc)
	require.NoError(t, err)

	usageSvc, err := NewService(ServiceParams{
		UsageRepo:     NewRepository(db),
		BagTypeRepo:   bagTypesRepo,
		InventoryRepo: inventoryRepo,
	})
	require.NoError(t, err)

	bagType, err := bagTypesSvc.Create(ctx, userID, bagtypes.CreateInput{
		Name:        "Canvas tote",
		PricePerBag: "0.50",
		Color:       "#2e7d32",
		Icon:        "tote",
	})
	require.NoError(t, err)

	car, err := carsSvc.Create(ctx, userID, cars.CreateInput{Name: "Family wagon"})
	require.NoError(t, err)

	stocked, err := inventorySvc.Set(ctx, userID, car.ID, inventory.SetInput{
		BagTypeID: bagType.ID,
		Quantity:  10,
	})
	require.NoError(t, err)
	require.Equal(t, 10, stocked.Quantity)

	recorded, err := usageSvc.Record(ctx, userID, RecordInput{
		BagTypeID: bagType.ID,
		CarID:     &car.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.True(t, recorded.SavingsAmount.Equal(decimal.RequireFromString("1.50")),
		"expected frozen savings 1.50, got %s", recorded.SavingsAmount)

	rows, err := inventorySvc.ListForCar(ctx, userID, car.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 7, rows[0].Quantity)
	require.False(t, rows[0].LowStock)

	totals, err := usageSvc.Savings(ctx, userID)
	require.NoError(t, err)
	require.True(t, totals.TotalSavings.Equal(decimal.RequireFromString("1.50")))
	require.EqualValues(t, 3, totals.TotalBagsSaved)

	// A later price change must not alter already-recorded savings.
	require.NoError(t, db.Exec(
		"UPDATE bag_types SET price_per_bag = ? WHERE id = ?", "2.00", bagType.ID,
	).Error)

	totals, err = usageSvc.Savings(ctx, userID)
	require.NoError(t, err)
	require.True(t, totals.TotalSavings.Equal(decimal.RequireFromString("1.50")))
}
