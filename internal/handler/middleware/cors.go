package middleware

import (
	"log/slog"
	"slices"

	"campsite-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy. An origin list of "*" opens the
// API to any origin; credentials are never allowed together with it.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS credentials disabled for wildcard origin")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"expose_headers", cfg.ExposeHeaders)
	return cors.New(corsCfg)
}
