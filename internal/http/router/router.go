package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lukegor/price-negotiation-backend/internal/config"
	"github.com/lukegor/price-negotiation-backend/internal/http/handlers"
	"github.com/lukegor/price-negotiation-backend/internal/http/middleware"
	"github.com/lukegor/price-negotiation-backend/internal/interface/http/handler"
	"github.com/lukegor/price-negotiation-backend/internal/models"
	"github.com/lukegor/price-negotiation-backend/internal/service"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *handlers.WSHandler,
	productHandler *handler.ProductHandler,
	negotiationHandler *handler.NegotiationHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	api.GET("/ws", wsHandler.Handle)

	// Catalog reads are public; writes belong to staff and admins.
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/:id", middleware.UUIDValidator("id"), productHandler.GetProduct)

	staffProducts := api.Group("/products")
	staffProducts.Use(
		middleware.AuthMiddleware(tokenManager),
		middleware.RequireRoles(models.RoleStaff, models.RoleAdmin),
	)
	{
		staffProducts.POST("", productHandler.CreateProduct)
		staffProducts.PUT("/:id", middleware.UUIDValidator("id"), productHandler.UpdateProduct)
		staffProducts.DELETE("/:id", middleware.UUIDValidator("id"), productHandler.DeleteProduct)
	}

	negotiations := api.Group("/negotiations")
	negotiations.Use(middleware.AuthMiddleware(tokenManager))
	{
		negotiations.POST("", middleware.RequireRoles(models.RoleCustomer), negotiationHandler.CreateNegotiation)
		negotiations.GET("/my", negotiationHandler.ListMyNegotiations)
		negotiations.GET("", middleware.RequireRoles(models.RoleStaff, models.RoleAdmin), negotiationHandler.ListNegotiations)
		negotiations.GET("/:id", middleware.UUIDValidator("id"), negotiationHandler.GetNegotiation)
		negotiations.PATCH("/:id/propose", middleware.UUIDValidator("id"), middleware.RequireRoles(models.RoleCustomer), negotiationHandler.ProposeNewPrice)
		negotiations.PATCH("/:id/respond", middleware.UUIDValidator("id"), middleware.RequireRoles(models.RoleStaff, models.RoleAdmin), negotiationHandler.RespondToProposal)
		negotiations.DELETE("/:id", middleware.UUIDValidator("id"), middleware.RequireRoles(models.RoleAdmin), negotiationHandler.DeleteNegotiation)
	}

	return r
}
