package database

import (
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed inserts a starter catalog and a few orders when the pizzas table is
// empty. Rows are created out-of-band here; the API itself never creates them.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count pizzas: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(seedPizzas()).Error; err != nil {
			return fmt.Errorf("seed: pizzas: %w", err)
		}
		if err := tx.Create(seedOrders(time.Now().UTC())).Error; err != nil {
			return fmt.Errorf("seed: orders: %w", err)
		}
		log.Info("Database seeded successfully")
		return nil
	})
}

func seedPizzas() []models.Pizza {
	return []models.Pizza{
		{Name: "Margherita", UnitPrice: decimal.RequireFromString("10.99"), Ingredients: datatypes.JSON(`["Tomato Sauce","Mozzarella","Basil"]`)},
		{Name: "Pepperoni", UnitPrice: decimal.RequireFromString("12.99"), Ingredients: datatypes.JSON(`["Tomato Sauce","Mozzarella","Pepperoni"]`)},
		{Name: "Vegetarian", UnitPrice: decimal.RequireFromString("11.99"), Ingredients: datatypes.JSON(`["Tomato Sauce","Mozzarella","Bell Peppers","Olives"]`)},
		{Name: "Quattro Formaggi", UnitPrice: decimal.RequireFromString("13.49"), Ingredients: datatypes.JSON(`["Mozzarella","Gorgonzola","Parmesan","Fontina"]`)},
	}
}

func seedOrders(now time.Time) []models.Order {
	customer := uuid.New()
	return []models.Order{
		{
			ID:        "ord-" + uuid.NewString()[:8],
			UserID:    &customer,
			OrderData: datatypes.JSON(`{"items":[{"pizza":"Margherita","quantity":2}],"address":"1 Main St"}`),
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:        "ord-" + uuid.NewString()[:8],
			OrderData: datatypes.JSON(`{"items":[{"pizza":"Pepperoni","quantity":1}],"address":"22 Elm St"}`),
			Status:    "preparing",
			Priority:  true,
			CreatedAt: now.Add(-10 * time.Minute),
		},
	}
}
