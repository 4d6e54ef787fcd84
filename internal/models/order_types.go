package models

// Order is the model for the 'orders' table.
// Items holds the line items as opaque serialized JSON, exactly as stored;
// callers parse it back themselves.
type Order struct {
	ID           int64   `json:"id" db:"id"`
	CustomerName string  `json:"customer_name" db:"customer_name"`
	Phone        string  `json:"phone" db:"phone"`
	Address      string  `json:"address" db:"address"`
	City         string  `json:"city" db:"city"`
	TotalAmount  float64 `json:"total_amount" db:"total_amount"`
	Items        string  `json:"items" db:"items"`
	Status       string  `json:"status" db:"status"` // e.g. pending, shipped, delivered
}
