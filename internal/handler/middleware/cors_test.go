//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campsite-reservation/internal/handler/middleware"
	"campsite-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(cfg config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/api/v1/reservations", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func corsConfig(origins ...string) config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Location", "X-Request-ID"},
		MaxAge:        time.Hour,
	}
}

func TestNewCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.CORSConfig
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{name: "success: listed origin", cfg: corsConfig("http://localhost:3000"), origin: "http://localhost:3000", wantStatus: http.StatusOK, wantAllow: "http://localhost:3000"},
		{name: "success: wildcard origin", cfg: corsConfig("*"), origin: "http://camp.example", wantStatus: http.StatusOK, wantAllow: "*"},
		{name: "error: unlisted origin", cfg: corsConfig("http://localhost:3000"), origin: "http://evil.example", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			newCORSRouter(tt.cfg).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
