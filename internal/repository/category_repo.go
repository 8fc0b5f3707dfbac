package repository

import (
	"context"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, name).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.Conflict("Category already exists")
		}
		return 0, apperr.Storage(err)
	}
	return id, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	out := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE name=$1)`
	if err := r.DB.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}
