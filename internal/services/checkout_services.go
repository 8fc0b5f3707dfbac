package services

import (
	"context"

	"github.com/Andybrookes-dev/Space-Store/internal/model"
)

// CheckoutStore runs the whole read-validate-persist-clear sequence as one
// atomic unit so a failed step never leaves a billed order over a non-empty
// cart.
type CheckoutStore interface {
	PlaceOrder(ctx context.Context, email string) (*model.Order, error)
}

type CheckoutService struct {
	Repo CheckoutStore
}

func NewCheckoutService(r CheckoutStore) *CheckoutService {
	return &CheckoutService{Repo: r}
}

// Checkout converts the identity's cart into a Pending order. An empty cart
// is rejected before anything is written.
func (s *CheckoutService) Checkout(ctx context.Context, email string) (*model.Order, error) {
	return s.Repo.PlaceOrder(ctx, email)
}
