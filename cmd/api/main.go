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
	"github.com/torressantiago/agencia-crm/internal/application/auth"
	appmetrics "github.com/torressantiago/agencia-crm/internal/application/metrics"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
	"github.com/torressantiago/agencia-crm/internal/infrastructure/jsonstore"
	"github.com/torressantiago/agencia-crm/internal/infrastructure/notify"
	infrapdf "github.com/torressantiago/agencia-crm/internal/infrastructure/pdf"
	"github.com/torressantiago/agencia-crm/internal/infrastructure/postgres"
	httpRouter "github.com/torressantiago/agencia-crm/internal/interfaces/http"
	"github.com/torressantiago/agencia-crm/pkg/config"
	"github.com/torressantiago/agencia-crm/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios (pool inyectado vía Querier)
	userRepo := postgres.NewUserRepository(pool)
	palenqueRepo := postgres.NewPalenqueRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	convRepo := postgres.NewConversationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	metricsRepo := postgres.NewMetricsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	newsletterStore, err := jsonstore.NewNewsletterStore(cfg.Integrations.NewsletterPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo de newsletter")
	}

	// Colaboradores externos (no-op si la URL no está configurada)
	workflowClient := notify.NewWorkflowWebhookClient(cfg.Integrations.WorkflowWebhookURL)
	emailClient := notify.NewEmailClient(cfg.Integrations.EmailAPIURL, cfg.Integrations.EmailAPIKey, cfg.Integrations.EmailFrom)
	whatsappClient := notify.NewWhatsAppClient(cfg.Integrations.WhatsAppAPIURL, cfg.Integrations.WhatsAppToken)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, palenqueRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	leadUC := usecase.NewLeadUseCase(leadRepo, palenqueRepo, workflowClient, emailClient, cfg.Integrations.EmailNotify, log)
	convUC := usecase.NewConversationUseCase(convRepo, whatsappClient, log)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	palenqueUC := usecase.NewPalenqueUseCase(palenqueRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	newsletterUC := usecase.NewNewsletterUseCase(newsletterStore)

	dashboardUC := appmetrics.NewDashboardUseCase(metricsRepo)
	reportGenerator := infrapdf.NewMarotoReportGenerator(cfg.Integrations.CaptureBaseURL)
	reportUC := appmetrics.NewReportUseCase(dashboardUC, palenqueRepo, leadRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Torres Santiago CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		LeadUC:         leadUC,
		ConversationUC: convUC,
		ProductUC:      productUC,
		PalenqueUC:     palenqueUC,
		UserUC:         userUC,
		NewsletterUC:   newsletterUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
		WebhookToken:   cfg.Integrations.WebhookToken,
		CaptureBaseURL: cfg.Integrations.CaptureBaseURL,
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
