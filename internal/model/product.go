package model

// Product is a catalog row. Category is the joined categories.name and is
// "Uncategorised" when category_id is NULL or dangling.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Category    string  `json:"category"`
	Active      bool    `json:"active"`
}

// ProductFilter composes the public listing's read-side filters.
type ProductFilter struct {
	Category string  // case-insensitive category name
	Query    string  // free text against name/description
	MaxPrice float64 // 0 means no ceiling
}
