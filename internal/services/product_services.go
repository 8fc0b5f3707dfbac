package services

import (
	"context"
	"strings"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"
)

type ProductStore interface {
	ListActive(ctx context.Context, f model.ProductFilter) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) (int64, error)
	Update(ctx context.Context, p *model.Product) error
	Deactivate(ctx context.Context, id int64) error
}

type ProductService struct {
	Repo ProductStore
}

func NewProductService(r ProductStore) *ProductService {
	return &ProductService{Repo: r}
}

func (s *ProductService) ListActive(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	return s.Repo.ListActive(ctx, f)
}

func (s *ProductService) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.Repo.ListAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) (int64, error) {
	if err := validateProduct(p); err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.Repo.Update(ctx, p)
}

// Deactivate soft-deletes: the product disappears from public listings but
// stays resolvable for past orders.
func (s *ProductService) Deactivate(ctx context.Context, id int64) error {
	return s.Repo.Deactivate(ctx, id)
}

func validateProduct(p *model.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return apperr.Validation("Product name required")
	}
	if p.Price < 0 {
		return apperr.Validation("Price must not be negative")
	}
	return nil
}
