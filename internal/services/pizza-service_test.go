package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func createPizza(t *testing.T, db *gorm.DB, name, price string) models.Pizza {
	t.Helper()
	pizza := models.Pizza{
		Name:        name,
		UnitPrice:   decimal.RequireFromString(price),
		Ingredients: datatypes.JSON(`["Tomato Sauce","Mozzarella"]`),
	}
	require.NoError(t, db.Create(&pizza).Error)
	return pizza
}

func TestPizzaService_GetAllPizzas(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	ctx := context.Background()

	t.Run("empty catalog returns empty slice", func(t *testing.T) {
		pizzas, err := service.GetAllPizzas(ctx)
		require.NoError(t, err)
		assert.NotNil(t, pizzas)
		assert.Empty(t, pizzas)
	})

	t.Run("returns every pizza", func(t *testing.T) {
		createPizza(t, db, "Margherita", "10.99")
		createPizza(t, db, "Pepperoni", "12.99")

		pizzas, err := service.GetAllPizzas(ctx)
		require.NoError(t, err)
		assert.Len(t, pizzas, 2)
	})
}

func TestPizzaService_GetPizzaByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	created := createPizza(t, db, "Margherita", "10.99")

	pizza, err := service.GetPizzaByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Margherita", pizza.Name)
	assert.True(t, decimal.RequireFromString("10.99").Equal(pizza.UnitPrice))
	assert.False(t, pizza.SoldOut)
	assert.False(t, pizza.UpdatedAt.Before(pizza.CreatedAt))

	_, err = service.GetPizzaByID(context.Background(), created.ID+100)
	assert.ErrorIs(t, err, ErrPizzaNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPizzaService_UpdatePrice(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	created := createPizza(t, db, "Margherita", "10.99")
	ctx := context.Background()

	newPrice := decimal.RequireFromString("13.50")
	updated, err := service.UpdatePrice(ctx, created.ID, newPrice)
	require.NoError(t, err)
	assert.True(t, newPrice.Equal(updated.UnitPrice))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt must move forward")
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "createdAt is immutable")

	reloaded, err := service.GetPizzaByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, newPrice.Equal(reloaded.UnitPrice))
	assert.True(t, reloaded.UpdatedAt.Equal(updated.UpdatedAt))
	assert.Equal(t, "Margherita", reloaded.Name, "only the price column is written")
}

func TestPizzaService_UpdateSoldOut(t *testing.T) {
	db := setupTestDB(t)
	created := createPizza(t, db, "Pepperoni", "12.99")
	ctx := context.Background()

	// The clock never advances: updatedAt must still strictly increase.
	at := created.UpdatedAt
	service := &pizzaService{db: db, now: frozenClock(at)}

	first, err := service.UpdateSoldOut(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, first.SoldOut)
	assert.True(t, first.UpdatedAt.After(at))

	second, err := service.UpdateSoldOut(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, second.SoldOut, "repeating the update is idempotent")
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	third, err := service.UpdateSoldOut(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, third.SoldOut, "false must be persisted, not skipped as a zero value")

	reloaded, err := service.GetPizzaByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.SoldOut)
}

func TestPizzaService_UpdateMissingPizza(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	ctx := context.Background()

	_, err := service.UpdatePrice(ctx, 42, decimal.RequireFromString("9.99"))
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	_, err = service.UpdateSoldOut(ctx, 42, true)
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be written for a missing id")
}

func TestPizzaService_CancelledContext(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)
	created := createPizza(t, db, "Margherita", "10.99")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.UpdatePrice(ctx, created.ID, decimal.RequireFromString("1.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	reloaded, err := service.GetPizzaByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.99").Equal(reloaded.UnitPrice), "no partial write")
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPizzaService_StoreFailures(t *testing.T) {
	t.Run("list failure is a persistence error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "pizzas"`).WillReturnError(errors.New("connection refused"))

		_, err := NewPizzaService(db).GetAllPizzas(context.Background())
		assert.ErrorIs(t, err, ErrPersistence)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("write failure is a persistence error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "name", "unit_price", "sold_out", "created_at", "updated_at"}).
			AddRow(3, "Margherita", "10.99", false, now, now)
		mock.ExpectQuery(`SELECT \* FROM "pizzas"`).WillReturnRows(rows)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "pizzas" SET`).WillReturnError(errors.New("write rejected"))
		mock.ExpectRollback()

		_, err := NewPizzaService(db).UpdateSoldOut(context.Background(), 3, true)
		assert.ErrorIs(t, err, ErrPersistence)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deadline is preserved through the wrapper", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "pizzas"`).WillReturnError(context.DeadlineExceeded)

		_, err := NewPizzaService(db).GetPizzaByID(context.Background(), 3)
		assert.ErrorIs(t, err, ErrPersistence)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
