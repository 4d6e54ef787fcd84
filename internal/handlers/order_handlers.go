package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/devhamz/shoprex-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// CreateOrderInput is the checkout payload. Items is kept raw: the line
// items are serialized to text and stored opaque, so whatever structure
// the storefront sends comes back byte-for-byte on retrieval.
type CreateOrderInput struct {
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	City        string          `json:"city"`
	TotalAmount float64         `json:"total_amount"`
	Items       json.RawMessage `json:"items"`
}

// UpdateOrderStatusInput is the body for PUT /orders/:id/status.
type UpdateOrderStatusInput struct {
	Status string `json:"status"`
}

// GetOrders handles GET /orders
func (h *Handlers) GetOrders(c *gin.Context) {
	rows, err := h.DB.Query("SELECT id, customer_name, phone, address, city, total_amount, items, status FROM orders ORDER BY id DESC")
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var items, status sql.NullString
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.City,
			&o.TotalAmount, &items, &status); err != nil {
			h.serverError(c, err)
			return
		}
		o.Items = items.String
		o.Status = status.String
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /orders
func (h *Handlers) CreateOrder(c *gin.Context) {
	var in CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items *string
	if len(in.Items) > 0 {
		s := string(in.Items)
		items = &s
	}

	query := `INSERT INTO orders (customer_name, phone, address, city, total_amount, items)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, customer_name, phone, address, city, total_amount, items, status`

	var o models.Order
	var storedItems, status sql.NullString
	err := h.DB.QueryRow(query, in.Name, in.Phone, in.Address, in.City, in.TotalAmount, items).
		Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.City,
			&o.TotalAmount, &storedItems, &status)
	if err != nil {
		h.serverError(c, err)
		return
	}
	o.Items = storedItems.String
	o.Status = status.String

	c.JSON(http.StatusOK, o)
}

// UpdateOrderStatus handles PUT /orders/:id/status
// Only the status column moves; everything else on the row stays put.
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var in UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", in.Status, c.Param("id")); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

// DeleteOrder handles DELETE /orders/:id
func (h *Handlers) DeleteOrder(c *gin.Context) {
	if _, err := h.DB.Exec("DELETE FROM orders WHERE id = $1", c.Param("id")); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
