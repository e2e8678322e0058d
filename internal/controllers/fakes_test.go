package controllers

import (
	"context"

	"github.com/franciscosanchezn/pizza-admin-api/internal/models"
	"github.com/shopspring/decimal"
)

// fakePizzaService returns canned results and records what it was asked to write
type fakePizzaService struct {
	pizza models.Pizza
	err   error

	calls     int
	lastID    int
	lastPrice decimal.Decimal
	lastSold  bool
}

func (f *fakePizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []models.Pizza{f.pizza}, nil
}

func (f *fakePizzaService) GetPizzaByID(ctx context.Context, id int) (*models.Pizza, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &f.pizza, nil
}

func (f *fakePizzaService) UpdatePrice(ctx context.Context, id int, price decimal.Decimal) (*models.Pizza, error) {
	f.calls++
	f.lastID, f.lastPrice = id, price
	if f.err != nil {
		return nil, f.err
	}
	pizza := f.pizza
	pizza.UnitPrice = price
	return &pizza, nil
}

func (f *fakePizzaService) UpdateSoldOut(ctx context.Context, id int, soldOut bool) (*models.Pizza, error) {
	f.calls++
	f.lastID, f.lastSold = id, soldOut
	if f.err != nil {
		return nil, f.err
	}
	pizza := f.pizza
	pizza.SoldOut = soldOut
	return &pizza, nil
}

type fakeOrderService struct {
	order models.Order
	err   error

	calls        int
	lastID       string
	lastStatus   string
	lastPriority bool
}

func (f *fakeOrderService) GetRecentOrders(ctx context.Context) ([]models.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []models.Order{f.order}, nil
}

func (f *fakeOrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &f.order, nil
}

func (f *fakeOrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	f.calls++
	f.lastID, f.lastStatus = id, status
	if f.err != nil {
		return nil, f.err
	}
	order := f.order
	order.Status = status
	return &order, nil
}

func (f *fakeOrderService) UpdatePriority(ctx context.Context, id string, priority bool) (*models.Order, error) {
	f.calls++
	f.lastID, f.lastPriority = id, priority
	if f.err != nil {
		return nil, f.err
	}
	order := f.order
	order.Priority = priority
	return &order, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }
