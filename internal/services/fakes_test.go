package services

import (
	"context"
	"strings"
	"time"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"
	"github.com/Andybrookes-dev/Space-Store/internal/model"
)

// ─── fake user store ─────────────────────────────────────────────────────────

type fakeUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) (int64, error) {
	if _, ok := f.users[u.Email]; ok {
		return 0, apperr.Conflict("Email already registered")
	}
	f.nextID++
	cp := *u
	cp.ID = f.nextID
	f.users[u.Email] = &cp
	return cp.ID, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

// ─── fake category store ─────────────────────────────────────────────────────

type fakeCategoryStore struct {
	categories []model.Category
	nextID     int64
}

func (f *fakeCategoryStore) Create(_ context.Context, name string) (int64, error) {
	f.nextID++
	f.categories = append(f.categories, model.Category{ID: f.nextID, Name: name})
	return f.nextID, nil
}

func (f *fakeCategoryStore) List(_ context.Context) ([]model.Category, error) {
	return append([]model.Category{}, f.categories...), nil
}

func (f *fakeCategoryStore) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// ─── fake product store ──────────────────────────────────────────────────────

type fakeProductStore struct {
	products map[int64]*model.Product
	nextID   int64
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[int64]*model.Product{}}
}

func (f *fakeProductStore) add(name string, price float64) int64 {
	f.nextID++
	f.products[f.nextID] = &model.Product{ID: f.nextID, Name: name, Price: price, Active: true}
	return f.nextID
}

func (f *fakeProductStore) ListActive(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range f.products {
		if !p.Active {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(p.Name), q) &&
				!strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) ListAll(_ context.Context) ([]model.Product, error) {
	out := []model.Product{}
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, apperr.NotFound("Product not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) Create(_ context.Context, p *model.Product) (int64, error) {
	f.nextID++
	cp := *p
	cp.ID = f.nextID
	f.products[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeProductStore) Update(_ context.Context, p *model.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return apperr.NotFound("Product not found")
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductStore) Deactivate(_ context.Context, id int64) error {
	p, ok := f.products[id]
	if !ok || !p.Active {
		return apperr.NotFound("Product not found")
	}
	p.Active = false
	return nil
}

// ─── fake cart/checkout/order store ──────────────────────────────────────────

type fakeCartItem struct {
	id        int64
	cartID    int64
	productID int64
	qty       int
}

// fakeCommerceStore backs CartStore, CheckoutStore and OrderStore over one
// shared in-memory state, mirroring the SQL repo semantics.
type fakeCommerceStore struct {
	products *fakeProductStore

	carts      map[string]*model.Cart
	items      map[int64]*fakeCartItem
	orders     map[int64]*model.Order
	orderItems map[int64][]model.OrderItem

	nextCartID  int64
	nextItemID  int64
	nextOrderID int64
}

func newFakeCommerceStore(products *fakeProductStore) *fakeCommerceStore {
	return &fakeCommerceStore{
		products:   products,
		carts:      map[string]*model.Cart{},
		items:      map[int64]*fakeCartItem{},
		orders:     map[int64]*model.Order{},
		orderItems: map[int64][]model.OrderItem{},
	}
}

func (f *fakeCommerceStore) GetOrCreate(_ context.Context, email string) (*model.Cart, error) {
	if c, ok := f.carts[email]; ok {
		return c, nil
	}
	f.nextCartID++
	c := &model.Cart{ID: f.nextCartID, UserEmail: email}
	f.carts[email] = c
	return c, nil
}

func (f *fakeCommerceStore) UpsertItem(_ context.Context, cartID, productID int64, qty int) error {
	for _, it := range f.items {
		if it.cartID == cartID && it.productID == productID {
			it.qty += qty
			return nil
		}
	}
	f.nextItemID++
	f.items[f.nextItemID] = &fakeCartItem{id: f.nextItemID, cartID: cartID, productID: productID, qty: qty}
	return nil
}

func (f *fakeCommerceStore) ownItem(email string, itemID int64) *fakeCartItem {
	cart, ok := f.carts[email]
	if !ok {
		return nil
	}
	it, ok := f.items[itemID]
	if !ok || it.cartID != cart.ID {
		return nil
	}
	return it
}

func (f *fakeCommerceStore) SetQuantity(_ context.Context, email string, itemID int64, qty int) error {
	it := f.ownItem(email, itemID)
	if it == nil {
		return apperr.NotFound("Cart item not found")
	}
	it.qty = qty
	return nil
}

func (f *fakeCommerceStore) RemoveItem(_ context.Context, email string, itemID int64) error {
	it := f.ownItem(email, itemID)
	if it == nil {
		return apperr.NotFound("Cart item not found")
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeCommerceStore) Clear(_ context.Context, email string) error {
	cart, ok := f.carts[email]
	if !ok {
		return nil
	}
	for id, it := range f.items {
		if it.cartID == cart.ID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeCommerceStore) GetItems(_ context.Context, email string) ([]model.CartItem, error) {
	out := []model.CartItem{}
	cart, ok := f.carts[email]
	if !ok {
		return out, nil
	}
	for _, it := range f.items {
		if it.cartID != cart.ID {
			continue
		}
		p := f.products.products[it.productID]
		out = append(out, model.CartItem{
			ID:        it.id,
			ProductID: it.productID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  it.qty,
			Subtotal:  p.Price * float64(it.qty),
		})
	}
	return out, nil
}

func (f *fakeCommerceStore) PlaceOrder(_ context.Context, email string) (*model.Order, error) {
	cart, ok := f.carts[email]
	if !ok {
		return nil, apperr.EmptyCart("Cart is empty")
	}
	var lines []model.CheckoutLine
	var captured []model.OrderItem
	for _, it := range f.items {
		if it.cartID != cart.ID {
			continue
		}
		p := f.products.products[it.productID]
		lines = append(lines, model.CheckoutLine{ProductID: it.productID, Quantity: it.qty, Price: p.Price})
		captured = append(captured, model.OrderItem{ProductID: it.productID, Name: p.Name, Quantity: it.qty, Price: p.Price})
	}
	if len(lines) == 0 {
		return nil, apperr.EmptyCart("Cart is empty")
	}

	f.nextOrderID++
	order := &model.Order{
		ID:        f.nextOrderID,
		UserEmail: email,
		Total:     model.CheckoutTotal(lines),
		Status:    model.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	f.orders[order.ID] = order
	for i := range captured {
		captured[i].OrderID = order.ID
	}
	f.orderItems[order.ID] = captured

	for id, it := range f.items {
		if it.cartID == cart.ID {
			delete(f.items, id)
		}
	}
	return order, nil
}

func (f *fakeCommerceStore) ListByUser(_ context.Context, email string) ([]model.Order, error) {
	out := []model.Order{}
	for _, o := range f.orders {
		if o.UserEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeCommerceStore) ListAll(_ context.Context) ([]model.Order, error) {
	out := []model.Order{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeCommerceStore) GetByID(_ context.Context, id int64) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, apperr.NotFound("Order not found")
	}
	cp := *o
	return &cp, nil
}

func (f *fakeCommerceStore) ListItems(_ context.Context, orderID int64) ([]model.OrderItem, error) {
	return append([]model.OrderItem{}, f.orderItems[orderID]...), nil
}

func (f *fakeCommerceStore) MarkFulfilled(_ context.Context, id int64) error {
	o, ok := f.orders[id]
	if !ok || o.Status != model.OrderStatusPending {
		return apperr.NotFound("Order not found")
	}
	o.Status = model.OrderStatusFulfilled
	return nil
}
