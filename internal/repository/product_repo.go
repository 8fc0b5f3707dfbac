package repository

import (
	"context"
	"fmt"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `p.id, p.name, p.price, p.description, p.image, p.category_id,
	COALESCE(c.name, 'Uncategorised') AS category, p.active`

// ListActive returns public products (active=true) with filter composition
// layered on top: category name, free text against name/description, price
// ceiling.
func (r *ProductRepository) ListActive(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.active = TRUE`
	args := []interface{}{}

	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND LOWER(c.name) = LOWER($%d)", len(args))
	}
	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args))
	}
	if f.MaxPrice > 0 {
		args = append(args, f.MaxPrice)
		query += fmt.Sprintf(" AND p.price <= $%d", len(args))
	}
	query += " ORDER BY p.id"

	return r.queryProducts(ctx, query, args...)
}

// ListAll is the admin listing; no active filter.
func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.id`
	return r.queryProducts(ctx, query)
}

// GetByID resolves any product, inactive included, so historical order lines
// still render.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id=$1`
	err := r.DB.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image, &p.CategoryID, &p.Category, &p.Active)
	if err != nil {
		return nil, apperr.NotFound("Product not found")
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	query := `INSERT INTO products (name, price, description, image, category_id, active)
		VALUES ($1, $2, $3, $4, $5, TRUE) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, p.Name, p.Price, p.Description, p.Image, p.CategoryID).Scan(&id); err != nil {
		return 0, apperr.Storage(err)
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `UPDATE products SET name=$1, price=$2, description=$3, image=$4, category_id=$5, active=$6
		WHERE id=$7`
	tag, err := r.DB.Exec(ctx, query, p.Name, p.Price, p.Description, p.Image, p.CategoryID, p.Active, p.ID)
	if err != nil {
		return apperr.Storage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Product not found")
	}
	return nil
}

// Deactivate is the logical delete: the row and its image reference stay so
// past order lines keep resolving.
func (r *ProductRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE products SET active=FALSE WHERE id=$1 AND active=TRUE`
	tag, err := r.DB.Exec(ctx, query, id)
	if err != nil {
		return apperr.Storage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Product not found")
	}
	return nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]model.Product, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	list := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Image, &p.CategoryID, &p.Category, &p.Active); err != nil {
			return nil, apperr.Storage(err)
		}
		list = append(list, p)
	}
	return list, nil
}
