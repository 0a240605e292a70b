package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/shiftboard/shiftboard_app/cmd/docs"
	portssvc "github.com/shiftboard/shiftboard_app/internal/core/ports/services"
	"github.com/shiftboard/shiftboard_app/internal/middleware"
	"github.com/shiftboard/shiftboard_app/internal/platform/config"
)

var weekdayNames = map[string]struct{}{
	"sunday": {}, "monday": {}, "tuesday": {}, "wednesday": {},
	"thursday": {}, "friday": {}, "saturday": {},
}

// The "weekday" binding rule accepts lowercase English day names and is
// used by the schedule preference payloads. Registered at init so it is in
// place before any request is bound.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := weekdayNames[strings.ToLower(fl.Field().String())]
			return ok
		})
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSessionRoutes(v1, services)
	registerProfileRoutes(v1, services.Access, services.User)
	registerOnboardingRoutes(v1, services.Access, services.Onboarding)
	registerEmployeeRoutes(v1, services.Access, services.Shift, services.Request)
	registerManagerRoutes(v1, services)
}

// registerManagerRoutes groups every manager-gated surface under /manager.
func registerManagerRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	manager := rg.Group("/manager")

	registerRosterRoutes(manager, services.Access, services.Employee, services.Request)
	registerShiftRoutes(manager, services.Access, services.Shift)
	RegisterScheduleRoutes(manager, services.Access, services.Schedule)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
