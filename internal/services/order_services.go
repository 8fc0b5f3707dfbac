package services

import (
	"context"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"
)

type OrderStore interface {
	ListByUser(ctx context.Context, email string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	MarkFulfilled(ctx context.Context, id int64) error
}

type OrderService struct {
	Repo OrderStore
}

func NewOrderService(r OrderStore) *OrderService {
	return &OrderService{Repo: r}
}

func (s *OrderService) ListByUser(ctx context.Context, email string) ([]model.Order, error) {
	return s.Repo.ListByUser(ctx, email)
}

func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.Repo.ListAll(ctx)
}

// ListItems returns an order's captured lines. Non-admin callers only see
// their own orders.
func (s *OrderService) ListItems(ctx context.Context, email string, isAdmin bool, orderID int64) ([]model.OrderItem, error) {
	o, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserEmail != email {
		return nil, apperr.NotFound("Order not found")
	}
	return s.Repo.ListItems(ctx, orderID)
}

// MarkFulfilled is the only exposed status transition: Pending -> Fulfilled.
func (s *OrderService) MarkFulfilled(ctx context.Context, id int64) error {
	return s.Repo.MarkFulfilled(ctx, id)
}
