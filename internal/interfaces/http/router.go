package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gastrostock/gastrostock-api/internal/application/analytics"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	LocationUC     *usecase.LocationUseCase
	NotificationUC *usecase.NotificationUseCase
	StockUC        *inventory.StockUseCase
	MovementUC     *inventory.MovementUseCase
	TransferUC     *inventory.TransferUseCase
	DashboardUC    *analytics.DashboardUseCase
	ReportsUC      *analytics.ReportsUseCase
	Feed           ChangeFeed
	JWTSecret      string
}

// Router registra las rutas de la API. Todo el dominio va protegido con
// Bearer Token del proveedor de identidad.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Productos por partición
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.MovementUC, deps.TransferUC)

	inv := api.Group("/inventario/:inventario")
	inv.Get("/productos", productHandler.List)
	inv.Post("/productos", productHandler.Create)
	inv.Get("/productos/:id", productHandler.GetByID)
	inv.Put("/productos/:id", productHandler.Update)
	inv.Delete("/productos/:id", productHandler.Delete)

	// Stock
	inv.Put("/productos/:id/stock", inventoryHandler.SetStock)
	inv.Post("/productos/:id/stock/incrementar", inventoryHandler.Increment)
	inv.Post("/productos/:id/stock/decrementar", inventoryHandler.Decrement)
	inv.Get("/productos/:id/movimientos", inventoryHandler.ListProductMovements)

	// Movimientos y traslados
	api.Get("/movimientos", inventoryHandler.ListMovements)
	api.Post("/movimientos", inventoryHandler.RegisterMovement)
	api.Post("/movimientos/:id/revertir", inventoryHandler.ReverseMovement)
	api.Post("/traslados", inventoryHandler.Transfer)

	// Negocios
	locationHandler := NewLocationHandler(deps.LocationUC)
	negocios := api.Group("/negocios")
	negocios.Get("/", locationHandler.List)
	negocios.Post("/", locationHandler.Create)
	negocios.Get("/:id", locationHandler.GetByID)
	negocios.Put("/:id", locationHandler.Update)
	negocios.Delete("/:id", locationHandler.Delete)
	negocios.Get("/:id/productos", productHandler.ListByLocation)
	negocios.Get("/:id/movimientos", inventoryHandler.ListLocationMovements)

	// Analítica
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.ReportsUC)
	api.Get("/dashboard", analyticsHandler.Dashboard)
	api.Get("/reportes", analyticsHandler.Report)

	// Notificaciones
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	api.Get("/notificaciones", notificationHandler.ListUnread)
	api.Put("/notificaciones/:id/leida", notificationHandler.MarkRead)

	// Tiempo real
	if deps.Feed != nil {
		realtimeHandler := NewRealtimeHandler(deps.Feed)
		api.Get("/inventario/general/eventos", realtimeHandler.Stream)
	}
}
