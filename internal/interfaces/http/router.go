package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventrack/internal/application/analytics"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/auth"
	"github.com/tu-usuario/inventrack/internal/application/inventory"
	"github.com/tu-usuario/inventrack/internal/application/usecase"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	NotificationUC *usecase.NotificationUseCase
	LedgerUC       *inventory.LedgerUseCase
	BulkUC         *inventory.BulkUseCase
	DashboardUC    *analytics.DashboardUseCase
	ReportsUC      *analytics.ReportsUseCase
	RestockUC      *analytics.RestockUseCase
	ActivityUC     *audit.UseCase
	LoginLimiter   *LoginRateLimiter
	JWTSecret      string
}

// Router registra las rutas de la API.
//
// Roles: viewer solo lectura; manager además escribe productos, categorías,
// movimientos y operaciones masivas; admin además borra en masa y consulta
// la bitácora.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	canWrite := RequireRole(entity.RoleManager, entity.RoleAdmin)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público; login con rate limit por IP)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter.Middleware(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/preferences", authHandler.UpdatePreferences)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", canWrite, productHandler.Create)
	products.Put("/:id", canWrite, productHandler.Update)
	products.Delete("/:id", canWrite, productHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", canWrite, categoryHandler.Create)
	categories.Put("/:id", canWrite, categoryHandler.Update)
	categories.Delete("/:id", canWrite, categoryHandler.Delete)

	// Stock movements (el libro)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/summary", movementHandler.Summary)
	movements.Get("/product/:id", movementHandler.ListByProduct)
	movements.Post("/", canWrite, movementHandler.Apply)
	movements.Post("/transfer", canWrite, movementHandler.Transfer)

	// Analytics (solo lectura)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.ReportsUC, deps.RestockUC)
	analyticsGroup.Get("/dashboard", analyticsHandler.Dashboard)
	analyticsGroup.Get("/valuation", analyticsHandler.Valuation)
	analyticsGroup.Get("/valuation/pdf", analyticsHandler.ValuationPDF)
	analyticsGroup.Get("/low-stock", analyticsHandler.LowStock)
	analyticsGroup.Get("/expiry-alerts", analyticsHandler.ExpiryAlerts)
	analyticsGroup.Get("/restock-suggestions", analyticsHandler.RestockSuggestions)

	// Bulk (escritura; borrado masivo solo admin)
	bulk := protected.Group("/bulk/products")
	bulkHandler := NewBulkHandler(deps.BulkUC)
	bulk.Post("/adjust-price", canWrite, bulkHandler.AdjustPrice)
	bulk.Post("/change-category", canWrite, bulkHandler.ChangeCategory)
	bulk.Post("/update", canWrite, bulkHandler.Update)
	bulk.Post("/delete", adminOnly, bulkHandler.Delete)
	bulk.Post("/export-csv", bulkHandler.ExportCSV)

	// Activity logs (solo admin)
	activity := protected.Group("/activity-logs", adminOnly)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activity.Get("/", activityHandler.List)
	activity.Get("/entity/:entity/:id", activityHandler.ListByEntity)
	activity.Get("/user/:id/summary", activityHandler.UserSummary)

	// Notifications (del propio usuario)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)
}
