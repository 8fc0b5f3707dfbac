package services

import (
	"context"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"
)

// CartStore is the persistence behind the cart manager. Every mutation is
// scoped to the owning identity's email; item ids from other carts read as
// not found.
type CartStore interface {
	GetOrCreate(ctx context.Context, email string) (*model.Cart, error)
	UpsertItem(ctx context.Context, cartID, productID int64, qty int) error
	SetQuantity(ctx context.Context, email string, itemID int64, qty int) error
	RemoveItem(ctx context.Context, email string, itemID int64) error
	Clear(ctx context.Context, email string) error
	GetItems(ctx context.Context, email string) ([]model.CartItem, error)
}

type CartService struct {
	Repo     CartStore
	Products ProductStore
}

func NewCartService(r CartStore, pr ProductStore) *CartService {
	return &CartService{Repo: r, Products: pr}
}

// Add puts qty of a product into the identity's cart, merging into an
// existing line for the same product. A missing quantity counts as 1.
func (s *CartService) Add(ctx context.Context, email string, productID int64, qty int) error {
	if qty <= 0 {
		qty = 1
	}

	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !p.Active {
		return apperr.Validation("Product is no longer available")
	}

	cart, err := s.Repo.GetOrCreate(ctx, email)
	if err != nil {
		return err
	}
	return s.Repo.UpsertItem(ctx, cart.ID, productID, qty)
}

// UpdateQuantity sets a line's quantity, flooring at 1. Callers wanting zero
// should remove the line instead.
func (s *CartService) UpdateQuantity(ctx context.Context, email string, itemID int64, qty int) error {
	if qty < 1 {
		qty = 1
	}
	return s.Repo.SetQuantity(ctx, email, itemID, qty)
}

func (s *CartService) Remove(ctx context.Context, email string, itemID int64) error {
	return s.Repo.RemoveItem(ctx, email, itemID)
}

func (s *CartService) Clear(ctx context.Context, email string) error {
	return s.Repo.Clear(ctx, email)
}

// Get returns the cart view (items joined with product details + total).
func (s *CartService) Get(ctx context.Context, email string) (*model.CartResponse, error) {
	items, err := s.Repo.GetItems(ctx, email)
	if err != nil {
		return nil, err
	}
	resp := &model.CartResponse{Items: items}
	for _, it := range items {
		resp.Total += it.Subtotal
	}
	return resp, nil
}
