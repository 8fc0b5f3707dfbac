package model

type Cart struct {
	ID        int64  `json:"id"`
	UserEmail string `json:"user_email"`
}

// CartItem is what the API exposes (joined with product name/price/image).
type CartItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CartResponse is returned when calling GET /api/cart.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
