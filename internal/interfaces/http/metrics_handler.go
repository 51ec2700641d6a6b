package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/metrics"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/infrastructure/qr"
)

// MetricsHandler maneja el dashboard de métricas, el reporte PDF del funnel y
// el QR del formulario de captura.
type MetricsHandler struct {
	dashboard      *metrics.DashboardUseCase
	report         *metrics.ReportUseCase
	captureBaseURL string
}

// NewMetricsHandler construye el handler de métricas.
func NewMetricsHandler(dashboard *metrics.DashboardUseCase, report *metrics.ReportUseCase, captureBaseURL string) *MetricsHandler {
	return &MetricsHandler{dashboard: dashboard, report: report, captureBaseURL: captureBaseURL}
}

// GetMetrics godoc
// @Summary      Métricas del dashboard del palenque en sesión
// @Tags         metricas
// @Produce      json
// @Param        palenque_id  query  int  false  "tenant (solo admin/superadmin)"
// @Success      200  {object}  dto.DashboardMetricsDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/metricas [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	summary, err := h.dashboard.GetMetrics(c.Context(), scope.PalenqueID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// DownloadReport genera y descarga el reporte PDF del funnel.
func (h *MetricsHandler) DownloadReport(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	pdfBytes, filename, err := h.report.DownloadLeadReport(c.Context(), scope.PalenqueID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}

// CaptureQR devuelve un PNG con el QR del formulario público de captura del
// palenque en sesión, listo para imprimir. ?size= controla el lado en px.
func (h *MetricsHandler) CaptureQR(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	if h.captureBaseURL == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Error: "URL de captura no configurada"})
	}
	captureURL := fmt.Sprintf("%s?palenque_id=%d&origen=%s", h.captureBaseURL, scope.PalenqueID, entity.LeadOrigenQR)
	png, err := qr.GeneratePNG(captureURL, c.QueryInt("size"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
