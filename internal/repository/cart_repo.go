package repository

import (
	"context"
	"errors"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the identity's cart, creating it on first access.
// carts.user_email is UNIQUE: two concurrent first-requests race on the
// insert, the loser's ON CONFLICT DO NOTHING turns into the re-read below,
// so exactly one cart row ever exists per identity.
func (r *CartRepository) GetOrCreate(ctx context.Context, email string) (*model.Cart, error) {
	var c model.Cart
	insert := `INSERT INTO carts (user_email) VALUES ($1)
		ON CONFLICT (user_email) DO NOTHING
		RETURNING id, user_email`
	err := r.DB.QueryRow(ctx, insert, email).Scan(&c.ID, &c.UserEmail)
	if err == nil {
		return &c, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Storage(err)
	}

	// insert hit the conflict; the row already exists
	query := `SELECT id, user_email FROM carts WHERE user_email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&c.ID, &c.UserEmail); err != nil {
		return nil, apperr.Storage(err)
	}
	return &c, nil
}

// UpsertItem adds qty to the identity's line for the product, inserting the
// line on first add. UNIQUE(cart_id, product_id) plus the ON CONFLICT update
// keeps at most one line per product.
func (r *CartRepository) UpsertItem(ctx context.Context, cartID, productID int64, qty int) error {
	query := `INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`
	if _, err := r.DB.Exec(ctx, query, cartID, productID, qty); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// SetQuantity updates one line, scoped to the identity's own cart: a foreign
// item id is indistinguishable from a missing one.
func (r *CartRepository) SetQuantity(ctx context.Context, email string, itemID int64, qty int) error {
	query := `UPDATE cart_items ci SET quantity=$1
		FROM carts c
		WHERE ci.id=$2 AND ci.cart_id=c.id AND c.user_email=$3`
	tag, err := r.DB.Exec(ctx, query, qty, itemID, email)
	if err != nil {
		return apperr.Storage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Cart item not found")
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, email string, itemID int64) error {
	query := `DELETE FROM cart_items ci
		USING carts c
		WHERE ci.id=$1 AND ci.cart_id=c.id AND c.user_email=$2`
	tag, err := r.DB.Exec(ctx, query, itemID, email)
	if err != nil {
		return apperr.Storage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Cart item not found")
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, email string) error {
	query := `DELETE FROM cart_items ci
		USING carts c
		WHERE ci.cart_id=c.id AND c.user_email=$1`
	if _, err := r.DB.Exec(ctx, query, email); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// GetItems returns the identity's cart lines joined with product details for
// display, plus the running total.
func (r *CartRepository) GetItems(ctx context.Context, email string) ([]model.CartItem, error) {
	query := `
		SELECT ci.id, p.id, p.name, p.price, p.image, ci.quantity
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN products p ON p.id = ci.product_id
		WHERE c.user_email=$1
		ORDER BY ci.id`
	rows, err := r.DB.Query(ctx, query, email)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Name, &it.Price, &it.Image, &it.Quantity); err != nil {
			return nil, apperr.Storage(err)
		}
		it.Subtotal = it.Price * float64(it.Quantity)
		items = append(items, it)
	}
	return items, nil
}
