package handlers

import (
	"database/sql"
	"net/http"

	"github.com/devhamz/shoprex-golang/internal/uploads"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers holds all dependencies for the route handlers.
type Handlers struct {
	DB      *sql.DB       // shared connection pool, lives for the process lifetime
	Uploads uploads.Store // disk or inline, picked at startup
	Log     zerolog.Logger
}

// Health handles GET /
func (h *Handlers) Health(c *gin.Context) {
	c.String(http.StatusOK, "Backend is Running...")
}

// serverError collapses a failed request into the flat plain-text 500 the
// admin frontend expects. The real error only goes to the log.
func (h *Handlers) serverError(c *gin.Context, err error) {
	h.Log.Error().Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	c.String(http.StatusInternalServerError, "Server Error")
}

// serverErrorDetail echoes the underlying error to the client as well.
// Only product creation does this.
func (h *Handlers) serverErrorDetail(c *gin.Context, err error) {
	h.Log.Error().Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	c.String(http.StatusInternalServerError, "Server Error: "+err.Error())
}
