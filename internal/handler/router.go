package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"viajes-backoffice/internal/handler/api"
	"viajes-backoffice/internal/handler/middleware"
	"viajes-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	saleHandler *api.SaleHandler,
	inventoryHandler *api.InventoryHandler,
	commissionHandler *api.CommissionHandler,
	authMiddleware *middleware.AuthMiddleware,
	cache *redis.Client,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, saleHandler, inventoryHandler, commissionHandler, authMiddleware, cache)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	saleHandler *api.SaleHandler,
	inventoryHandler *api.InventoryHandler,
	commissionHandler *api.CommissionHandler,
	authMiddleware *middleware.AuthMiddleware,
	cache *redis.Client,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		inventory := apiGroup.Group("/inventory")
		{
			addRoutes(inventory, []route{
				{Method: http.MethodGet, Path: "", Handler: inventoryHandler.ListAvailable,
					Mw: []gin.HandlerFunc{middleware.CacheResponse(cache, cfg.Redis.CacheTTL)}},
				{Method: http.MethodPost, Path: "/pools", Handler: inventoryHandler.CreatePool},
				{Method: http.MethodGet, Path: "/pools/:id", Handler: inventoryHandler.GetPool},
			})
		}

		sales := apiGroup.Group("/sales")
		{
			addRoutes(sales, []route{
				{Method: http.MethodPost, Path: "", Handler: saleHandler.CreateSale},
				{Method: http.MethodGet, Path: "", Handler: saleHandler.ListSales},
				{Method: http.MethodGet, Path: "/:id", Handler: saleHandler.GetSale},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: saleHandler.RecordPayment},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: saleHandler.ListPayments},
			})
		}

		commissions := apiGroup.Group("/commissions")
		{
			addRoutes(commissions, []route{
				{Method: http.MethodPost, Path: "/settle", Handler: commissionHandler.SettleCommissions},
				{Method: http.MethodGet, Path: "", Handler: commissionHandler.ListEntries},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
