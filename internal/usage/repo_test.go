package usage

import (
	"context"
	"testing"
	"time"

	"github.com/ecobagapp/ecobag-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsageTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
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
	require.NoError(t, db.Exec("DELETE FROM bag_usage").Error)

	return db
}

func insertUsage(t *testing.T, repo *Repository, userID uuid.UUID, qty int, savings string, usedAt time.Time) *models.BagUsage {
	t.Helper()
	amount, err := decimal.NewFromString(savings)
	require.NoError(t, err)

	row, err := repo.Insert(context.Background(), &models.BagUsage{
		ID:            uuid.New(),
		UserID:        userID,
		BagTypeID:     uuid.New(),
		Quantity:      qty,
		SavingsAmount: amount,
		UsedAt:        usedAt,
	})
	require.NoError(t, err)
	return row
}

func TestRepositoryListRecentOrdersAndLimits(t *testing.T) {
	repo := NewRepository(setupUsageTestDB(t))
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	oldest := insertUsage(t, repo, userID, 1, "0.50", base)
	middle := insertUsage(t, repo, userID, 2, "1.00", base.Add(time.Hour))
	newest := insertUsage(t, repo, userID, 3, "1.50", base.Add(2*time.Hour))
	insertUsage(t, repo, uuid.New(), 9, "9.00", base.Add(3*time.Hour))

	records, err := repo.ListRecent(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, newest.ID, records[0].ID)
	require.Equal(t, middle.ID, records[1].ID)
	require.Equal(t, oldest.ID, records[2].ID)

	limited, err := repo.ListRecent(context.Background(), userID, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, newest.ID, limited[0].ID)
}

func TestRepositorySumSavings(t *testing.T) {
	repo := NewRepository(setupUsageTestDB(t))
	userID := uuid.New()
	now := time.Now().UTC()

	insertUsage(t, repo, userID, 3, "1.50", now)
	insertUsage(t, repo, userID, 2, "0.50", now.Add(time.Minute))
	insertUsage(t, repo, uuid.New(), 7, "99.00", now)

	totals, err := repo.SumSavings(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, totals.TotalSavings.Equal(decimal.RequireFromString("2.00")), "got %s", totals.TotalSavings)
	require.Equal(t, int64(5), totals.TotalBagsSaved)
}

func TestRepositorySumSavingsEmptyUserIsZero(t *testing.T) {
	repo := NewRepository(setupUsageTestDB(t))

	totals, err := repo.SumSavings(context.Background(), uuid.New())
	require.NoError(t, err)
	require.True(t, totals.TotalSavings.IsZero())
	require.Equal(t, int64(0), totals.TotalBagsSaved)
}
