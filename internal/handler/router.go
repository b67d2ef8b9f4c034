package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"raffle-engine/internal/handler/api"
	"raffle-engine/internal/handler/middleware"
	"raffle-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Raffles      *api.RaffleHandler
	Reservations *api.ReservationHandler
	Payments     *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		raffles := apiGroup.Group("/raffles/:raffleId")
		{
			addRoutes(raffles, []route{
				{Method: http.MethodPost, Path: "/inventory", Handler: h.Raffles.Initialize},
				{Method: http.MethodGet, Path: "/inventory", Handler: h.Raffles.Inventory},
				{Method: http.MethodPatch, Path: "/status", Handler: h.Raffles.ChangeStatus},
				{Method: http.MethodGet, Path: "/participants", Handler: h.Raffles.Participants},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Raffles.Payments},
				{Method: http.MethodPost, Path: "/sweep", Handler: h.Raffles.Sweep},
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservations.Reserve},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservations.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservations.Cancel},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Payments.Submit},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Payments.Get},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Payments.Confirm},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Payments.Reject},
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
