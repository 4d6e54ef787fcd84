package handlers

import (
	"net/http"
	"strconv"

	"github.com/devhamz/shoprex-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetCategories handles GET /categories
func (h *Handlers) GetCategories(c *gin.Context) {
	rows, err := h.DB.Query("SELECT id, name, discount_percent, image_url FROM categories ORDER BY id ASC")
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.DiscountPercent, &cat.ImageURL); err != nil {
			h.serverError(c, err)
			return
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles POST /categories (multipart, image optional)
func (h *Handlers) CreateCategory(c *gin.Context) {
	name := c.PostForm("name")

	discountPercent := 0.0
	if v := c.PostForm("discount_percent"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.serverError(c, err)
			return
		}
		discountPercent = d
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.Uploads.Save(file)
		if err != nil {
			h.serverError(c, err)
			return
		}
		imageURL = &url
	}

	query := `INSERT INTO categories (name, discount_percent, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, discount_percent, image_url`

	var cat models.Category
	err := h.DB.QueryRow(query, name, discountPercent, imageURL).
		Scan(&cat.ID, &cat.Name, &cat.DiscountPercent, &cat.ImageURL)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, cat)
}

// DeleteCategory handles DELETE /categories/:id
// Products keep their category_id; nothing cascades.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if _, err := h.DB.Exec("DELETE FROM categories WHERE id = $1", c.Param("id")); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category Deleted"})
}
