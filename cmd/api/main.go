package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/arstock/arstock-api/internal/application/location"
	"github.com/arstock/arstock-api/internal/application/overview"
	"github.com/arstock/arstock-api/internal/application/report"
	"github.com/arstock/arstock-api/internal/application/session"
	"github.com/arstock/arstock-api/internal/application/theme"
	"github.com/arstock/arstock-api/internal/domain/schema"
	"github.com/arstock/arstock-api/internal/infrastructure/excel"
	"github.com/arstock/arstock-api/internal/infrastructure/memory"
	infrapdf "github.com/arstock/arstock-api/internal/infrastructure/pdf"
	httpRouter "github.com/arstock/arstock-api/internal/interfaces/http"
	"github.com/arstock/arstock-api/pkg/config"
	"github.com/arstock/arstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("seed", cfg.App.SeedData).
		Msg("iniciando aplicación")

	// Todo el estado es volátil: se crea acá y muere con el proceso.
	store := memory.NewStore(cfg.App.SeedData)

	sessionUC := session.New(session.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	themeUC := theme.New()
	locationUC := location.New(store.Locations)
	overviewUC := overview.New(store.Stock, store.Admins, locationUC)

	reportUC := report.New(
		store.Billing,
		locationUC,
		infrapdf.NewMarotoPDFGenerator(),
		excel.NewExporter(),
		map[string]report.Dataset{
			"stock":       report.DatasetOf(schema.Stock, store.Stock),
			"billing":     report.DatasetOf(schema.Billing, store.Billing),
			"debts":       report.DatasetOf(schema.Debts, store.Debts),
			"providers":   report.DatasetOf(schema.Providers, store.Providers),
			"employments": report.DatasetOf(schema.Employments, store.Employments),
			"customers":   report.DatasetOf(schema.Customers, store.Customers),
			"admins":      report.DatasetOf(schema.Admins, store.Admins),
			"stats":       report.DatasetOf(schema.Stats, store.Stats),
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Arstock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:          store,
		SessionUC:      sessionUC,
		ThemeUC:        themeUC,
		LocationUC:     locationUC,
		OverviewUC:     overviewUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
		MetricsEnabled: cfg.Metrics.Enabled,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
