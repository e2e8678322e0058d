package services

import (
	"context"
	"time"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"gorm.io/gorm"
)

// RecentOrdersLimit caps the number of orders returned by GetRecentOrders
const RecentOrdersLimit = 25

// OrderService provides methods to interact with the orders table
type OrderService interface {
	// GetRecentOrders retrieves the newest orders, most recent first
	GetRecentOrders(ctx context.Context) ([]models.Order, error)
	// GetOrderByID retrieves an order by its caller-supplied ID
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	// UpdateStatus sets the free-form status of an order
	UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error)
	// UpdatePriority sets the priority flag of an order
	UpdatePriority(ctx context.Context, id string, priority bool) (*models.Order, error)
}

type orderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db, now: time.Now}
}

func (s *orderService) GetRecentOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(RecentOrdersLimit).
		Find(&orders).Error
	if err != nil {
		log.WithError(err).Error("Failed to list recent orders")
		return nil, persistenceError("list orders", err)
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	return findByID[models.Order](ctx, s.db, id, ErrOrderNotFound)
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	order, err := updateByID(ctx, s.db, s.now, id, ErrOrderNotFound, "status", func(o *models.Order) {
		o.Status = status
	})
	logUpdate("order", id, "status", err)
	return order, err
}

func (s *orderService) UpdatePriority(ctx context.Context, id string, priority bool) (*models.Order, error) {
	order, err := updateByID(ctx, s.db, s.now, id, ErrOrderNotFound, "priority", func(o *models.Order) {
		o.Priority = priority
	})
	logUpdate("order", id, "priority", err)
	return order, err
}
