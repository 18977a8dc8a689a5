// Package api wires together all HTTP routes for the portfolio CMS backend.
//
// Route grouping philosophy:
//   - Read routes (/api/projects, /api/projects/featured, /api/projects/:id)
//     are public. The portfolio frontend renders them without a session, so
//     they must work without credentials.
//   - Mutating project routes require a valid bearer token via AuthGuard.
//   - The login route is public but sits behind a tighter rate limit profile
//     than the rest of the API to slow credential stuffing.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/portfolio-cms/portfolio-cms/internal/api/authapi"
	"github.com/portfolio-cms/portfolio-cms/internal/api/projects"
	"github.com/portfolio-cms/portfolio-cms/internal/auth"
	"github.com/portfolio-cms/portfolio-cms/internal/config"
	"github.com/portfolio-cms/portfolio-cms/internal/db/repositories"
	"github.com/portfolio-cms/portfolio-cms/internal/middleware"
)

// BackgroundServices holds references to background resources that must be
// stopped during graceful shutdown. The caller (cmd/server) is responsible
// for calling Shutdown() when the process receives a termination signal.
type BackgroundServices struct {
	rateLimiters []*middleware.RateLimiter
}

// Shutdown stops all background goroutines. It should be called after the
// HTTP server has been shut down so that in-flight requests are drained first.
func (bg *BackgroundServices) Shutdown() {
	slog.Info("stopping background services")
	for _, rl := range bg.rateLimiters {
		rl.Stop()
	}
	slog.Info("all background services stopped")
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, db *sqlx.DB) (*gin.Engine, *BackgroundServices) {
	router := gin.New()

	// Initialize repositories and services
	projectRepo := repositories.NewProjectRepository(db.DB)
	userRepo := repositories.NewUserRepository(db)
	authService := auth.NewService(userRepo, cfg.Auth.TokenTTL)

	projectHandlers := projects.NewHandlers(projectRepo)
	authHandlers := authapi.NewHandlers(authService)

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(LoggerMiddleware(cfg))
	router.Use(middleware.SecurityHeadersMiddleware(middleware.APISecurityHeadersConfig()))
	router.Use(CORSMiddleware(cfg))

	bg := &BackgroundServices{}

	var apiLimiter gin.HandlerFunc
	loginLimiter := func(c *gin.Context) { c.Next() }
	if cfg.Security.RateLimiting.Enabled {
		general := middleware.NewRateLimiter(middleware.DefaultRateLimitConfig())
		login := middleware.NewRateLimiter(middleware.AuthRateLimitConfig())
		bg.rateLimiters = append(bg.rateLimiters, general, login)
		apiLimiter = middleware.RateLimitMiddleware(general)
		loginLimiter = middleware.RateLimitMiddleware(login)
	}

	apiGroup := router.Group("/api")
	if apiLimiter != nil {
		apiGroup.Use(apiLimiter)
	}

	// Health check endpoint
	apiGroup.GET("/health", healthCheckHandler(db))

	// API version
	apiGroup.GET("/version", versionHandler())

	// Public project reads. /featured is registered before /:id so Gin does
	// not treat "featured" as a project ID.
	apiGroup.GET("/projects", projectHandlers.ListHandler())
	apiGroup.GET("/projects/featured", projectHandlers.FeaturedHandler())
	apiGroup.GET("/projects/:id", projectHandlers.GetHandler())

	// Authenticated project mutations
	protected := apiGroup.Group("")
	protected.Use(middleware.AuthGuard())
	protected.POST("/projects", projectHandlers.CreateHandler())
	protected.PATCH("/projects/:id", projectHandlers.UpdateHandler())
	protected.DELETE("/projects/:id", projectHandlers.DeleteHandler())

	// Login with its own tighter limiter
	apiGroup.POST("/auth/login", loginLimiter, authHandlers.LoginHandler())

	return router, bg
}

// @Summary      Health check
// @Description  Returns the health status of the service, including database connectivity.
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status: ok, time: RFC3339 timestamp"
// @Failure      503  {object}  map[string]interface{}  "status: unhealthy, error: database connection failed"
// @Router       /api/health [get]
// healthCheckHandler returns the health status of the service
func healthCheckHandler(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check database connection
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// @Summary      API version
// @Description  Returns the current API version.
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "version, api_version"
// @Router       /api/version [get]
// versionHandler returns the API version
func versionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":     "0.1.0",
			"api_version": "v1",
		})
	}
}

// LoggerMiddleware provides structured logging
func LoggerMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		logRequest(c, latency, path, query)
	}
}

// logRequest logs a request as a structured slog record. The output format
// (JSON or text) follows the global handler configured in telemetry.SetupLogger.
func logRequest(c *gin.Context, latency time.Duration, path, query string) {
	requestID, _ := c.Get(middleware.RequestIDKey)
	slog.LogAttrs(
		c.Request.Context(),
		slog.LevelInfo,
		"http request",
		slog.String("method", c.Request.Method),
		slog.String("path", path),
		slog.String("query", query),
		slog.Int("status", c.Writer.Status()),
		slog.Int("size", c.Writer.Size()),
		slog.Duration("latency", latency),
		slog.String("ip", c.ClientIP()),
		slog.String("request_id", fmt.Sprintf("%v", requestID)),
		slog.String("user_agent", c.Request.UserAgent()),
	)
}

// CORSMiddleware handles CORS from the security config
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.Security.CORS.AllowedMethods,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	allowAll := false
	for _, origin := range cfg.Security.CORS.AllowedOrigins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		// AllowCredentials cannot be combined with a wildcard origin;
		// reflect the caller's origin instead.
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = cfg.Security.CORS.AllowedOrigins
	}

	return cors.New(corsCfg)
}
