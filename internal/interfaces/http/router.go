package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/operations"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OperationUC *operations.OperationUseCase
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	CategoryUC  *usecase.CategoryUseCase
	StockUC     *usecase.StockUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
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
	protected.Get("/auth/me", authHandler.Me)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Operations (protegido) — ciclo de vida + procesamiento atómico
	operationsGroup := protected.Group("/operations")
	operationHandler := NewOperationHandler(deps.OperationUC)
	stockHandler := NewStockHandler(deps.StockUC)
	operationsGroup.Post("/", operationHandler.Create)
	operationsGroup.Get("/", operationHandler.List)
	operationsGroup.Get("/:id", operationHandler.GetByID)
	operationsGroup.Post("/:id/lines", operationHandler.AddLine)
	operationsGroup.Post("/:id/process", operationHandler.Process)
	operationsGroup.Put("/:id/status", operationHandler.UpdateStatus)
	operationsGroup.Get("/:id/movements", stockHandler.MovementsByOperation)

	// Stock y libro de movimientos (protegido, solo lectura)
	stock := protected.Group("/stock")
	stock.Get("/products/:id", stockHandler.GetByProduct)
	stock.Get("/products/:id/movements", stockHandler.MovementsByProduct)
	stock.Get("/warehouses/:id/movements", stockHandler.MovementsByWarehouse)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/kpis", dashboardHandler.GetKPIs)
	dashboard.Get("/low-stock", dashboardHandler.GetLowStock)
}
