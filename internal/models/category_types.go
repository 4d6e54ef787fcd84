package models

// Category is the model for the 'categories' table.
type Category struct {
	ID              int64   `json:"id" db:"id"`
	Name            string  `json:"name" db:"name"`
	DiscountPercent float64 `json:"discount_percent" db:"discount_percent"`
	ImageURL        *string `json:"image_url" db:"image_url"`
}
