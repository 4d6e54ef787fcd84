package routes_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devhamz/shoprex-golang/internal/config"
	"github.com/devhamz/shoprex-golang/internal/handlers"
	"github.com/devhamz/shoprex-golang/internal/routes"
	"github.com/devhamz/shoprex-golang/internal/uploads"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := &handlers.Handlers{
		DB:      db,
		Uploads: uploads.InlineStore{},
		Log:     zerolog.Nop(),
	}
	return routes.SetupRouter(h, cfg)
}

func baseConfig(t *testing.T) *config.Config {
	return &config.Config{
		BaseURL:        "http://localhost:5000",
		Port:           "5000",
		UploadStrategy: config.StrategyInline,
		UploadDir:      t.TempDir(),
		MaxBodyBytes:   1 << 20,
	}
}

func TestHealthRoute(t *testing.T) {
	router := newRouter(t, baseConfig(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend is Running...", w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newRouter(t, baseConfig(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/products", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestRequestIDEchoed(t *testing.T) {
	router := newRouter(t, baseConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRequestIDGenerated(t *testing.T) {
	router := newRouter(t, baseConfig(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// Bodies past the ceiling fail to parse and come back as a bind error.
func TestBodyLimitRejectsOversizedBody(t *testing.T) {
	cfg := baseConfig(t)
	cfg.MaxBodyBytes = 16
	router := newRouter(t, cfg)

	body := `{"name":"` + strings.Repeat("x", 64) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Disk-strategy deployments serve the upload directory; inline ones don't.
func TestStaticUploadsDiskOnly(t *testing.T) {
	cfg := baseConfig(t)
	cfg.UploadStrategy = config.StrategyDisk
	require.NoError(t, os.WriteFile(filepath.Join(cfg.UploadDir, "pic.png"), []byte("pixels"), 0644))
	router := newRouter(t, cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/pic.png", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pixels", w.Body.String())

	inlineRouter := newRouter(t, baseConfig(t))
	w = httptest.NewRecorder()
	inlineRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/pic.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
