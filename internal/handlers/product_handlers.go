package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/devhamz/shoprex-golang/internal/models"
	"github.com/gin-gonic/gin"
)

const productColumns = "id, title, price, original_price, discount_tag, image_url, category_id, stock_quantity, description"

// productInput carries a new product from either body shape: a JSON body
// (no file) or a multipart form with an optional image file.
type productInput struct {
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	DiscountTag   *string  `json:"discount_tag"`
	CategoryID    *int64   `json:"category_id"`
	StockQuantity int      `json:"stock_quantity"`
	Description   string   `json:"description"`
	ImageURL      *string  `json:"image_url"`
}

// GetProducts handles GET /products
func (h *Handlers) GetProducts(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + productColumns + " FROM products ORDER BY id DESC")
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.OriginalPrice, &p.DiscountTag,
			&p.ImageURL, &p.CategoryID, &p.StockQuantity, &p.Description); err != nil {
			h.serverError(c, err)
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductsByCategory handles GET /products/category/:id
func (h *Handlers) GetProductsByCategory(c *gin.Context) {
	rows, err := h.DB.Query("SELECT "+productColumns+" FROM products WHERE category_id = $1", c.Param("id"))
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.OriginalPrice, &p.DiscountTag,
			&p.ImageURL, &p.CategoryID, &p.StockQuantity, &p.Description); err != nil {
			h.serverError(c, err)
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /products
//
// Image priority: uploaded file > image_url text field > none.
func (h *Handlers) CreateProduct(c *gin.Context) {
	var in productInput

	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else if err := bindProductForm(c, &in); err != nil {
		h.serverErrorDetail(c, err)
		return
	}

	imageURL := in.ImageURL
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.Uploads.Save(file)
		if err != nil {
			h.serverErrorDetail(c, err)
			return
		}
		imageURL = &url
	}

	query := `INSERT INTO products (title, price, original_price, discount_tag, image_url, category_id, stock_quantity, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns

	var p models.Product
	err := h.DB.QueryRow(query,
		in.Title, in.Price, in.OriginalPrice, in.DiscountTag,
		imageURL, in.CategoryID, in.StockQuantity, in.Description,
	).Scan(&p.ID, &p.Title, &p.Price, &p.OriginalPrice, &p.DiscountTag,
		&p.ImageURL, &p.CategoryID, &p.StockQuantity, &p.Description)
	if err != nil {
		h.serverErrorDetail(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /products/:id
// No existence check: deleting an absent id still reports success.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if _, err := h.DB.Exec("DELETE FROM products WHERE id = $1", c.Param("id")); err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product Deleted"})
}

// bindProductForm reads the multipart/urlencoded field set with the same
// defaults the JSON shape gets for free: original_price and discount_tag
// stay NULL, stock_quantity falls back to 0, description to "".
func bindProductForm(c *gin.Context, in *productInput) error {
	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")

	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		in.Price = price
	}
	if v := c.PostForm("original_price"); v != "" {
		op, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		in.OriginalPrice = &op
	}
	if v := c.PostForm("discount_tag"); v != "" {
		in.DiscountTag = &v
	}
	if v := c.PostForm("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		in.CategoryID = &id
	}
	if v := c.PostForm("stock_quantity"); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		in.StockQuantity = stock
	}
	if v := c.PostForm("image_url"); v != "" {
		in.ImageURL = &v
	}
	return nil
}
