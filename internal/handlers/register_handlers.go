package handlers

import (
	"github.com/SarrafLink/exchange_locator_app/cmd/docs"
	portssvc "github.com/SarrafLink/exchange_locator_app/internal/core/ports/services"
	"github.com/SarrafLink/exchange_locator_app/internal/middleware"
	"github.com/SarrafLink/exchange_locator_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	searchLimiter *limiter.Limiter,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, searchLimiter)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations. The search endpoint is the only rate-limited
// surface; currency reads are cheap lookups.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	searchLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	v1.GET("/", getHome)
	RegisterCurrencyRoutes(v1, services.Currency)
	RegisterOfficeRoutes(v1, services.NearbySearch, middleware.RateLimit(searchLimiter))
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
