package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fiado-api/internal/application/auth"
	"github.com/tu-usuario/fiado-api/internal/application/inventory"
	"github.com/tu-usuario/fiado-api/internal/application/ledger"
	"github.com/tu-usuario/fiado-api/internal/application/maintenance"
	"github.com/tu-usuario/fiado-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *usecase.CustomerUseCase
	ProductUC     *usecase.ProductUseCase
	SettingsUC    *usecase.SettingsUseCase
	PurchaseUC    *ledger.PurchaseUseCase
	ReceiptUC     *ledger.ReceiptUseCase
	LedgerUC      *ledger.LedgerUseCase
	AdjustStock   *inventory.AdjustStockUseCase
	MaintenanceUC *maintenance.MaintenanceUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): consultar el candado, configurarlo y entrar.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Get("/status", authHandler.Status)
	authGroup.Post("/pin", authHandler.SetupPin)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Candado (protegido): cambiar o desactivar el PIN requiere sesión.
	protected.Put("/auth/pin", authHandler.ChangePin)
	protected.Delete("/auth/pin", authHandler.DisablePin)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Purchases (protegido)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.ReceiptUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Patch("/:id/paid", purchaseHandler.TogglePaid)
	purchases.Delete("/:id", purchaseHandler.Delete)
	purchases.Get("/:id/receipt", purchaseHandler.Receipt)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	invGroup.Post("/entries", inventoryHandler.Entry)
	invGroup.Post("/exits", inventoryHandler.Exit)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/movements", inventoryHandler.Movements)

	// Ledger (protegido): deudores y estados de cuenta.
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledgerGroup.Get("/debtors", ledgerHandler.Debtors)
	ledgerGroup.Get("/customers/:id", ledgerHandler.Statement)

	// Settings (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.GetSettings)
	settings.Put("/", settingsHandler.UpdateSettings)
	settings.Get("/profile", settingsHandler.GetProfile)
	settings.Put("/profile", settingsHandler.UpdateProfile)
	settings.Get("/theme", settingsHandler.GetTheme)
	settings.Put("/theme", settingsHandler.SetTheme)

	// Maintenance (protegido)
	maintenanceHandler := NewMaintenanceHandler(deps.MaintenanceUC)
	protected.Post("/maintenance/clean", maintenanceHandler.Clean)
}
