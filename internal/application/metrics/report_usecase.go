package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

const reportRecentLeads = 15 // leads recientes incluidos en la tabla del PDF

// LeadReportPDFGenerator puerto del generador del reporte PDF del funnel.
// La implementación concreta (Maroto) vive en infrastructure/pdf.
type LeadReportPDFGenerator interface {
	GenerateLeadReport(
		ctx context.Context,
		palenque *entity.Palenque,
		metrics *dto.DashboardMetricsDTO,
		recientes []*entity.Lead,
	) ([]byte, error)
}

// ReportUseCase genera el reporte PDF del funnel de un palenque: resumen de
// métricas más la tabla de leads recientes.
type ReportUseCase struct {
	dashboard    *DashboardUseCase
	palenqueRepo repository.PalenqueRepository
	leadRepo     repository.LeadRepository
	generator    LeadReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	dashboard *DashboardUseCase,
	palenqueRepo repository.PalenqueRepository,
	leadRepo repository.LeadRepository,
	generator LeadReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		dashboard:    dashboard,
		palenqueRepo: palenqueRepo,
		leadRepo:     leadRepo,
		generator:    generator,
	}
}

// DownloadLeadReport arma el PDF del funnel del palenque indicado.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el palenque no existe.
func (uc *ReportUseCase) DownloadLeadReport(ctx context.Context, palenqueID int64) (pdfBytes []byte, filename string, err error) {
	palenque, err := uc.palenqueRepo.GetByID(ctx, palenqueID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener palenque: %w", err)
	}
	if palenque == nil {
		return nil, "", domain.ErrNotFound
	}

	summary, err := uc.dashboard.GetMetrics(ctx, palenqueID)
	if err != nil {
		return nil, "", err
	}

	recientes, err := uc.leadRepo.ListByPalenque(ctx, palenqueID, repository.LeadFilter{}, reportRecentLeads, 0)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar leads recientes: %w", err)
	}

	bytes, err := uc.generator.GenerateLeadReport(ctx, palenque, summary, recientes)
	if err != nil {
		return nil, "", err
	}

	filename = fmt.Sprintf("reporte-leads-%d-%s.pdf", palenqueID, time.Now().Format("20060102"))
	return bytes, filename, nil
}
