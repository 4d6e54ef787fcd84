package models

// Product is the model for the 'products' table.
// Pointer fields map to nullable columns.
type Product struct {
	ID            int64    `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Price         float64  `json:"price" db:"price"`
	OriginalPrice *float64 `json:"original_price" db:"original_price"`
	DiscountTag   *string  `json:"discount_tag" db:"discount_tag"`
	ImageURL      *string  `json:"image_url" db:"image_url"`
	CategoryID    *int64   `json:"category_id" db:"category_id"` // soft reference, not enforced
	StockQuantity int      `json:"stock_quantity" db:"stock_quantity"`
	Description   string   `json:"description" db:"description"`
}
