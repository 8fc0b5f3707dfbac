package services

import (
	"context"
	"strings"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"
)

type CategoryStore interface {
	Create(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]model.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type CategoryService struct {
	Repo CategoryStore
}

func NewCategoryService(r CategoryStore) *CategoryService {
	return &CategoryService{Repo: r}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.Repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperr.Validation("Category name required")
	}
	exists, err := s.Repo.ExistsByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperr.Conflict("Category already exists")
	}
	return s.Repo.Create(ctx, name)
}
