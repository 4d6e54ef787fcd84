package routes

import (
	"net/http"

	"github.com/devhamz/shoprex-golang/internal/config"
	"github.com/devhamz/shoprex-golang/internal/handlers"
	"github.com/devhamz/shoprex-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware is deliberately permissive: the admin panel and the
// storefront are served from arbitrary origins.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204 and stop here.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(h.Log))
	router.Use(CORSMiddleware())
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.GET("/", h.Health)

	// --- Product Routes ---
	router.GET("/products", h.GetProducts)
	router.GET("/products/category/:id", h.GetProductsByCategory)
	router.POST("/products", h.CreateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)

	// --- Category Routes ---
	router.GET("/categories", h.GetCategories)
	router.POST("/categories", h.CreateCategory)
	router.DELETE("/categories/:id", h.DeleteCategory)

	// --- Slider Routes ---
	router.GET("/sliders", h.GetSliders)
	router.POST("/sliders", h.CreateSlider)
	router.DELETE("/sliders/:id", h.DeleteSlider)

	// --- Order Routes ---
	router.GET("/orders", h.GetOrders)
	router.POST("/orders", h.CreateOrder)
	router.PUT("/orders/:id/status", h.UpdateOrderStatus)
	router.DELETE("/orders/:id", h.DeleteOrder)

	// --- Promo Bar Routes ---
	router.GET("/promo", h.GetPromo)
	router.PUT("/promo", h.UpdatePromo)

	// Uploaded images are only on disk under the disk strategy; inline
	// uploads live inside the image_url column and need no file serving.
	if cfg.UploadStrategy == config.StrategyDisk {
		router.Static("/uploads", cfg.UploadDir)
	}

	return router
}
