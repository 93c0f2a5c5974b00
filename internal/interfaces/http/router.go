package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/arstock/arstock-api/internal/application/dto"
	"github.com/arstock/arstock-api/internal/application/location"
	"github.com/arstock/arstock-api/internal/application/overview"
	"github.com/arstock/arstock-api/internal/application/report"
	"github.com/arstock/arstock-api/internal/application/session"
	"github.com/arstock/arstock-api/internal/application/theme"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/schema"
	"github.com/arstock/arstock-api/internal/infrastructure/memory"
	"github.com/arstock/arstock-api/internal/observability/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store          *memory.Store
	SessionUC      *session.UseCase
	ThemeUC        *theme.UseCase
	LocationUC     *location.UseCase
	OverviewUC     *overview.UseCase
	ReportUC       *report.UseCase
	JWTSecret      string
	MetricsEnabled bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	api := app.Group("/api")

	// Auth (login público; el resto protegido)
	sessionHandler := NewSessionHandler(deps.SessionUC)
	api.Post("/auth/login", sessionHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", sessionHandler.Logout)
	protected.Get("/auth/session", sessionHandler.Current)

	// Tema y locales
	themeHandler := NewThemeHandler(deps.ThemeUC)
	protected.Get("/theme", themeHandler.Current)
	protected.Post("/theme/toggle", themeHandler.Toggle)

	locationHandler := NewLocationHandler(deps.LocationUC)
	protected.Get("/locations", locationHandler.List)
	protected.Post("/locations", locationHandler.Create)
	protected.Put("/locations/selected", locationHandler.Select)

	// Resumen y descargas
	overviewHandler := NewOverviewHandler(deps.OverviewUC)
	protected.Get("/overview", overviewHandler.Summary)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/billing/:id/pdf", reportHandler.InvoicePDF)
	protected.Get("/reports/:screen", reportHandler.ExportXLSX)

	// Las ocho pantallas de entidad, cada una con la misma máquina CRUD.
	RegisterScreen[entity.StockItem, dto.StockRequest](protected.Group("/stock"), "stock", deps.Store.Stock, schema.Stock)
	RegisterScreen[entity.Invoice, dto.InvoiceRequest](protected.Group("/billing"), "billing", deps.Store.Billing, schema.Billing)
	RegisterScreen[entity.Debt, dto.DebtRequest](protected.Group("/debts"), "debts", deps.Store.Debts, schema.Debts)
	RegisterScreen[entity.Provider, dto.ProviderRequest](protected.Group("/providers"), "providers", deps.Store.Providers, schema.Providers)
	RegisterScreen[entity.Employee, dto.EmployeeRequest](protected.Group("/employments"), "employments", deps.Store.Employments, schema.Employments)
	RegisterScreen[entity.Customer, dto.CustomerRequest](protected.Group("/customers"), "customers", deps.Store.Customers, schema.Customers)
	RegisterScreen[entity.Admin, dto.AdminRequest](protected.Group("/admins"), "admins", deps.Store.Admins, schema.Admins)
	RegisterScreen[entity.Metric, dto.MetricRequest](protected.Group("/stats"), "stats", deps.Store.Stats, schema.Stats)
}
