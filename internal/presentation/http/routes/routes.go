package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/alinea-erp/internal/config"
	domainRepo "github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/response"
	"github.com/sangkips/alinea-erp/internal/presentation/http/handler"
	"github.com/sangkips/alinea-erp/internal/presentation/http/middleware"
	"github.com/sangkips/alinea-erp/pkg/utils"
)

// Permissions checked by the route groups
const (
	PermissionManageAcknowledgements = "manage-acknowledgements"
	PermissionManageInvoices         = "manage-invoices"
	PermissionManagePurchaseOrders   = "manage-purchase-orders"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Acknowledgement *handler.AcknowledgementHandler
	Invoice         *handler.InvoiceHandler
	PurchaseOrder   *handler.PurchaseOrderHandler
	Pricing         *handler.PricingHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.CompanyRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	router.GET("/health", func(c *gin.Context) {
		body := gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		}
		if deps.RateLimiter != nil {
			body["rate_limiter"] = deps.RateLimiter.Stats()
		}
		c.JSON(200, body)
	})

	if deps.Cfg.Metrics.Enabled {
		router.GET(deps.Cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		if deps.RateLimiter != nil {
			protected.Use(deps.RateLimiter.Middleware())
		}

		registerPricingRoutes(protected, h)
		registerAcknowledgementRoutes(protected, h, deps)
		registerInvoiceRoutes(protected, h)
		registerPurchaseOrderRoutes(protected, h, deps)
	}

	return router
}

func idempotent(deps *Deps, required bool) gin.HandlerFunc {
	return middleware.Idempotency(middleware.IdempotencyConfig{
		Repo:     deps.IdempotencyRepo,
		TTL:      deps.Cfg.Idempotency.TTL,
		Required: required,
	})
}

func registerPricingRoutes(protected *gin.RouterGroup, h *Handlers) {
	pricing := protected.Group("/pricing")
	{
		pricing.POST("/quote", h.Pricing.Quote)
		pricing.POST("/custom-size", h.Pricing.CustomSize)
	}
}

func registerAcknowledgementRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	acks := protected.Group("/acknowledgements")
	acks.Use(middleware.RequirePermission(PermissionManageAcknowledgements))
	{
		acks.GET("", h.Acknowledgement.List)
		acks.POST("", idempotent(deps, true), h.Acknowledgement.Create)
		acks.GET("/:id", h.Acknowledgement.Get)
		acks.DELETE("/:id", h.Acknowledgement.Delete)
		acks.PATCH("/:id/terms", idempotent(deps, false), h.Acknowledgement.UpdateTerms)
		acks.PATCH("/:id/items/:item_id", idempotent(deps, false), h.Acknowledgement.UpdateItem)
		acks.POST("/:id/recalculate", h.Acknowledgement.Recalculate)
		acks.GET("/:id/balance", h.Acknowledgement.Balance)
		acks.GET("/:id/invoices", h.Invoice.ListByAcknowledgement)
		acks.POST("/:id/invoices",
			middleware.RequirePermission(PermissionManageInvoices),
			idempotent(deps, true),
			h.Invoice.Create,
		)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequirePermission(PermissionManageInvoices))
	{
		invoices.GET("/:id", h.Invoice.Get)
	}
}

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	pos := protected.Group("/purchase-orders")
	pos.Use(middleware.RequirePermission(PermissionManagePurchaseOrders))
	{
		pos.POST("", idempotent(deps, true), h.PurchaseOrder.Create)
		pos.GET("/:id", h.PurchaseOrder.Get)
		pos.PATCH("/:id/terms", idempotent(deps, false), h.PurchaseOrder.UpdateTerms)
		pos.POST("/:id/recalculate", h.PurchaseOrder.Recalculate)
	}
}
