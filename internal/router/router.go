package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rkenterprise/site-backend/internal/config"
	"github.com/rkenterprise/site-backend/internal/handler"
	"github.com/rkenterprise/site-backend/internal/middleware"
	"github.com/rkenterprise/site-backend/internal/response"
	"github.com/rkenterprise/site-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	AdminUser *handler.AdminUserHandler
	Product   *handler.ProductHandler
	Contact   *handler.ContactHandler
	Media     *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so responses are traceable.
	router.Use(response.RequestIDMiddleware())

	// Compress JSON responses; images under /assets are already compressed.
	router.Use(middleware.CompressWithConfig(middleware.CompressConfig{
		SkipPrefixes: []string{"/assets"},
	}))

	// Serve public assets (including uploaded product images) with
	// aggressive caching (1 year); uploads never reuse a filename.
	assetsGroup := router.Group("/assets")
	assetsGroup.Use(middleware.CacheControl(31536000))
	{
		assetsGroup.Static("/", filepath.Join(cfg.PublicDir, "assets"))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "OK", gin.H{"status": "ok"})
	})

	// Abuse limits for the unauthenticated write paths.
	loginLimiter := middleware.NewRateLimiter(30, time.Minute)
	contactLimiter := middleware.NewRateLimiter(10, time.Minute)

	// ─── 1. Public Catalog & Contact (No Auth) ─────────────────────────
	publicAPI := router.Group("/api")
	{
		publicAPI.GET("/products", handlers.Product.ListPublic)
		publicAPI.GET("/products/:id", handlers.Product.Get)
		publicAPI.POST("/contact/submit", contactLimiter.Middleware(), handlers.Contact.Submit)
	}

	// ─── 2. Admin Group (Bearer Token) ─────────────────────────────────
	adminAPI := router.Group("/api/admin")
	{
		adminAPI.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)

		authed := adminAPI.Group("")
		authed.Use(middleware.RequireAdminJWT(authService))
		{
			authed.GET("/me", handlers.Auth.Me)

			// Admin account management
			authed.GET("/users", handlers.AdminUser.List)
			authed.POST("/users", handlers.AdminUser.Create)
			authed.PUT("/users/:id", handlers.AdminUser.Update)
			authed.DELETE("/users/:id", handlers.AdminUser.Delete)

			// Image upload
			authed.POST("/upload", handlers.Media.Upload)

			// Product management
			authed.GET("/products", handlers.Product.ListAdmin)
			authed.POST("/products", handlers.Product.Create)
			authed.PUT("/products/:id", handlers.Product.Update)
			authed.PATCH("/products/:id/status", handlers.Product.ToggleStatus)
			authed.DELETE("/products/:id", handlers.Product.Delete)
		}
	}

	// ─── 3. Contact Query Inbox (Bearer Token) ─────────────────────────
	queriesAPI := router.Group("/api/queries")
	queriesAPI.Use(middleware.RequireAdminJWT(authService))
	{
		queriesAPI.GET("", handlers.Contact.List)
		queriesAPI.DELETE("/:id", handlers.Contact.Delete)
	}

	// Unknown routes answer JSON, not HTML.
	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrRouteNotFound)
	})

	return router
}
