package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/auth"
	"github.com/torressantiago/agencia-crm/internal/application/metrics"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	LeadUC         *usecase.LeadUseCase
	ConversationUC *usecase.ConversationUseCase
	ProductUC      *usecase.ProductUseCase
	PalenqueUC     *usecase.PalenqueUseCase
	UserUC         *usecase.UserUseCase
	NewsletterUC   *usecase.NewsletterUseCase
	DashboardUC    *metrics.DashboardUseCase
	ReportUC       *metrics.ReportUseCase
	JWTSecret      string
	WebhookToken   string
	CaptureBaseURL string
}

// Router registra las rutas de la API y el guard de páginas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	// Guard de páginas: redirige (no responde JSON) en /admin y /dashboard.
	app.Use(RouteGuard(deps.JWTSecret))

	api := app.Group("/api")

	// Auth (login público; password requiere sesión)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Put("/password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)

	// Captura pública de leads y boletín (sin sesión)
	leadHandler := NewLeadHandler(deps.LeadUC, deps.WebhookToken)
	api.Post("/leads", leadHandler.Capture)

	newsletterHandler := NewNewsletterHandler(deps.NewsletterUC)
	api.Post("/newsletter", newsletterHandler.Subscribe)

	// Webhooks de integraciones (token compartido, sin JWT)
	conversationHandler := NewConversationHandler(deps.ConversationUC, deps.WebhookToken)
	webhooks := api.Group("/webhooks")
	webhooks.Post("/leads", leadHandler.WebhookCapture)
	webhooks.Post("/whatsapp", conversationHandler.WhatsAppWebhook)

	// Dashboard (cualquier rol autenticado; el scope de tenant se resuelve
	// por handler a partir de los claims)
	dashboard := api.Group("/dashboard", AuthMiddleware(deps.JWTSecret))

	dashboard.Get("/leads", leadHandler.List)
	dashboard.Get("/leads/:id", leadHandler.GetByID)
	dashboard.Patch("/leads/:id/estado", leadHandler.UpdateEstado)
	dashboard.Patch("/leads/:id/notas", leadHandler.UpdateNotas)

	dashboard.Get("/conversaciones", conversationHandler.List)
	dashboard.Get("/conversaciones/:id", conversationHandler.GetByID)
	dashboard.Post("/conversaciones/:id/responder", conversationHandler.Reply)

	productHandler := NewProductHandler(deps.ProductUC)
	dashboard.Post("/productos", productHandler.Create)
	dashboard.Get("/productos", productHandler.List)
	dashboard.Get("/productos/:id", productHandler.GetByID)
	dashboard.Put("/productos/:id", productHandler.Update)
	dashboard.Patch("/productos/:id/activo", productHandler.SetActivo)

	metricsHandler := NewMetricsHandler(deps.DashboardUC, deps.ReportUC, deps.CaptureBaseURL)
	dashboard.Get("/metricas", metricsHandler.GetMetrics)
	dashboard.Get("/reportes/leads.pdf", metricsHandler.DownloadReport)
	dashboard.Get("/qr", metricsHandler.CaptureQR)

	// Administración de tenants y usuarios (solo admin/superadmin)
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin, entity.RoleSuperadmin),
	)

	palenqueHandler := NewPalenqueHandler(deps.PalenqueUC)
	admin.Post("/palenques", palenqueHandler.Create)
	admin.Get("/palenques", palenqueHandler.List)
	admin.Get("/palenques/:id", palenqueHandler.GetByID)
	admin.Put("/palenques/:id", palenqueHandler.Update)
	admin.Patch("/palenques/:id/activo", palenqueHandler.SetActivo)

	userHandler := NewUserHandler(deps.UserUC)
	admin.Post("/usuarios", authHandler.Register)
	admin.Get("/usuarios", userHandler.List)
	admin.Patch("/usuarios/:id/activo", userHandler.SetActivo)

	admin.Get("/newsletter", newsletterHandler.List)
}
