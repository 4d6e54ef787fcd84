package handlers

import (
	"net/http"

	"github.com/devhamz/shoprex-golang/internal/models"
	"github.com/gin-gonic/gin"
)

// GetSliders handles GET /sliders
func (h *Handlers) GetSliders(c *gin.Context) {
	rows, err := h.DB.Query("SELECT id, image_url FROM sliders ORDER BY id DESC")
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer rows.Close()

	sliders := []models.Slider{}
	for rows.Next() {
		var s models.Slider
		if err := rows.Scan(&s.ID, &s.ImageURL); err != nil {
			h.serverError(c, err)
			return
		}
		sliders = append(sliders, s)
	}
	if err := rows.Err(); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, sliders)
}

// CreateSlider handles POST /sliders. Unlike products and categories the
// image is mandatory here: a slide without an image is meaningless.
func (h *Handlers) CreateSlider(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Please upload an image"})
		return
	}

	imageURL, err := h.Uploads.Save(file)
	if err != nil {
		h.serverError(c, err)
		return
	}

	var s models.Slider
	err = h.DB.QueryRow("INSERT INTO sliders (image_url) VALUES ($1) RETURNING id, image_url", imageURL).
		Scan(&s.ID, &s.ImageURL)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// DeleteSlider handles DELETE /sliders/:id
func (h *Handlers) DeleteSlider(c *gin.Context) {
	if _, err := h.DB.Exec("DELETE FROM sliders WHERE id = $1", c.Param("id")); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slider Deleted"})
}
