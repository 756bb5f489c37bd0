package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-suite-api/internal/application/auth"
	"github.com/jhoicas/wms-suite-api/internal/application/usecase"
	"github.com/jhoicas/wms-suite-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	MarginUC     *usecase.MarginUseCase
	ReorderUC    *usecase.ReorderUseCase
	CalculatorUC *usecase.CalculatorUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Analytics: reporte de márgenes y calculadora (protegido, cualquier rol)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.MarginUC, deps.CalculatorUC)
	analyticsGroup.Get("/margins", analyticsHandler.GetMargins)
	analyticsGroup.Post("/calculator", analyticsHandler.QuickCalculate)

	// Inventory: reposición (protegido; el rol analista es solo-reportes)
	invGroup := protected.Group("/inventory")
	reorderHandler := NewReorderHandler(deps.ReorderUC)
	invGroup.Get("/reorder",
		RequireRole(entity.RoleAdmin, entity.RoleBodeguero),
		reorderHandler.GetRecommendations,
	)
}
