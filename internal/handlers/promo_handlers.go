package handlers

import (
	"database/sql"
	"net/http"

	"github.com/devhamz/shoprex-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// UpdatePromoInput is the body for PUT /promo.
type UpdatePromoInput struct {
	Message  string `json:"message"`
	EndTime  string `json:"end_time"`
	IsActive bool   `json:"is_active"`
}

// GetPromo handles GET /promo. The promo bar is a singleton row with a
// fixed id; if someone dropped it from the database the response is a
// JSON null body, not an error.
func (h *Handlers) GetPromo(c *gin.Context) {
	var p models.PromoSetting
	err := h.DB.QueryRow("SELECT id, message, end_time, is_active FROM promo_settings WHERE id = 1").
		Scan(&p.ID, &p.Message, &p.EndTime, &p.IsActive)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdatePromo handles PUT /promo. The row is never inserted or deleted,
// so the update targets the fixed id unconditionally.
func (h *Handlers) UpdatePromo(c *gin.Context) {
	var in UpdatePromoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.DB.Exec("UPDATE promo_settings SET message = $1, end_time = $2, is_active = $3 WHERE id = 1",
		in.Message, in.EndTime, in.IsActive); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promo updated"})
}
