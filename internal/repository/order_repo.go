package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// PlaceOrder converts the identity's cart into an order in one transaction:
// lock the cart row, read lines with the price current at this moment,
// insert the order and its captured lines, clear the cart, commit. A
// concurrent double-submit queues on the row lock and then sees an empty
// cart.
func (r *OrderRepository) PlaceOrder(ctx context.Context, email string) (*model.Order, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx)

	var cartID int64
	err = tx.QueryRow(ctx, `SELECT id FROM carts WHERE user_email=$1 FOR UPDATE`, email).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.EmptyCart("Cart is empty")
		}
		return nil, apperr.Storage(err)
	}

	rows, err := tx.Query(ctx, `
		SELECT ci.product_id, ci.quantity, p.price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id=$1
		ORDER BY ci.id`, cartID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	var lines []model.CheckoutLine
	for rows.Next() {
		var l model.CheckoutLine
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.Price); err != nil {
			rows.Close()
			return nil, apperr.Storage(err)
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	if len(lines) == 0 {
		return nil, apperr.EmptyCart("Cart is empty")
	}

	order := &model.Order{
		UserEmail: email,
		Total:     model.CheckoutTotal(lines),
		Status:    model.OrderStatusPending,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_email, total, status) VALUES ($1, $2, $3) RETURNING id, created_at`,
		order.UserEmail, order.Total, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("create order: %w", err))
	}

	for _, l := range lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)`,
			order.ID, l.ProductID, l.Quantity, l.Price)
		if err != nil {
			return nil, apperr.Storage(fmt.Errorf("create order line: %w", err))
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cartID); err != nil {
		return nil, apperr.Storage(fmt.Errorf("clear cart: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Storage(fmt.Errorf("commit tx: %w", err))
	}
	return order, nil
}

// ListByUser returns the identity's orders, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, email string) ([]model.Order, error) {
	query := `SELECT id, user_email, total, status, created_at
		FROM orders WHERE user_email=$1 ORDER BY created_at DESC, id DESC`
	return r.queryOrders(ctx, query, email)
}

// ListAll is the admin listing, unfiltered.
func (r *OrderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT id, user_email, total, status, created_at
		FROM orders ORDER BY created_at DESC, id DESC`
	return r.queryOrders(ctx, query)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	query := `SELECT id, user_email, total, status, created_at FROM orders WHERE id=$1`
	err := r.DB.QueryRow(ctx, query, id).Scan(&o.ID, &o.UserEmail, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, apperr.NotFound("Order not found")
	}
	return &o, nil
}

// ListItems returns an order's captured lines joined with product names.
func (r *OrderRepository) ListItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id=$1
		ORDER BY oi.id`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	items := []model.OrderItem{}
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, apperr.Storage(err)
		}
		items = append(items, it)
	}
	return items, nil
}

// MarkFulfilled moves a Pending order to Fulfilled. The status guard in the
// WHERE clause keeps the transition one-directional.
func (r *OrderRepository) MarkFulfilled(ctx context.Context, id int64) error {
	query := `UPDATE orders SET status=$1 WHERE id=$2 AND status=$3`
	tag, err := r.DB.Exec(ctx, query, model.OrderStatusFulfilled, id, model.OrderStatusPending)
	if err != nil {
		return apperr.Storage(err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Order not found")
	}
	return nil
}

func (r *OrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]model.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserEmail, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, o)
	}
	return out, nil
}
