package services

import (
	"context"
	"time"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza table
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas in the store's natural order
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id int) (*models.Pizza, error)
	// UpdatePrice sets the unit price of a pizza
	UpdatePrice(ctx context.Context, id int, price decimal.Decimal) (*models.Pizza, error)
	// UpdateSoldOut sets the sold-out flag of a pizza
	UpdateSoldOut(ctx context.Context, id int, soldOut bool) (*models.Pizza, error)
}

// pizzaService is the gorm implementation of the PizzaService interface
type pizzaService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db, now: time.Now}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Find(&pizzas).Error; err != nil {
		log.WithError(err).Error("Failed to list pizzas")
		return nil, persistenceError("list pizzas", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id int) (*models.Pizza, error) {
	return findByID[models.Pizza](ctx, s.db, id, ErrPizzaNotFound)
}

func (s *pizzaService) UpdatePrice(ctx context.Context, id int, price decimal.Decimal) (*models.Pizza, error) {
	pizza, err := updateByID(ctx, s.db, s.now, id, ErrPizzaNotFound, "unit_price", func(p *models.Pizza) {
		p.UnitPrice = price
	})
	logUpdate("pizza", id, "unit_price", err)
	return pizza, err
}

func (s *pizzaService) UpdateSoldOut(ctx context.Context, id int, soldOut bool) (*models.Pizza, error) {
	pizza, err := updateByID(ctx, s.db, s.now, id, ErrPizzaNotFound, "sold_out", func(p *models.Pizza) {
		p.SoldOut = soldOut
	})
	logUpdate("pizza", id, "sold_out", err)
	return pizza, err
}
