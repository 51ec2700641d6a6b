// Package metrics contiene el caso de uso del dashboard de métricas de un
// palenque: funnel de leads, capturas por origen y serie diaria.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

const serieDias = 30 // ventana de la serie diaria del dashboard

// DashboardUseCase construye el resumen de métricas de un palenque.
//
// Fuente de datos: MetricsRepository (agregados read-only). No toca las tablas
// de leads directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	metricsRepo repository.MetricsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(metricsRepo repository.MetricsRepository) *DashboardUseCase {
	return &DashboardUseCase{metricsRepo: metricsRepo}
}

// GetMetrics arma el DashboardMetricsDTO para el palenque indicado.
//
// Seis consultas en paralelo:
//  1. CountLeads          → TotalLeads
//  2. CountLeadsSince     → LeadsDelMes (día 1 del mes en curso)
//  3. CountConvertidos    → numerador de TasaConversion
//  4. CountByEstado       → Funnel
//  5. CountByOrigen       → PorOrigen
//  6. DailySeries (30d)   → Serie30Dias
//
// Si cualquiera falla se devuelve un único error; nunca un resumen parcial.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, palenqueID int64) (*dto.DashboardMetricsDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	serieFrom := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -(serieDias - 1))
	serieTo := serieFrom.AddDate(0, 0, serieDias-1)

	type countResult struct {
		total int
		err   error
	}
	type funnelResult struct {
		rows []repository.FunnelCount
		err  error
	}
	type origenResult struct {
		rows []repository.OrigenCount
		err  error
	}
	type serieResult struct {
		rows []repository.DailyLeadCount
		err  error
	}

	totalCh := make(chan countResult, 1)
	mesCh := make(chan countResult, 1)
	convCh := make(chan countResult, 1)
	funnelCh := make(chan funnelResult, 1)
	origenCh := make(chan origenResult, 1)
	serieCh := make(chan serieResult, 1)

	go func() {
		n, err := uc.metricsRepo.CountLeads(ctx, palenqueID)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.metricsRepo.CountLeadsSince(ctx, palenqueID, monthStart)
		mesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.metricsRepo.CountConvertidos(ctx, palenqueID)
		convCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.metricsRepo.CountByEstado(ctx, palenqueID)
		funnelCh <- funnelResult{rows, err}
	}()
	go func() {
		rows, err := uc.metricsRepo.CountByOrigen(ctx, palenqueID)
		origenCh <- origenResult{rows, err}
	}()
	go func() {
		rows, err := uc.metricsRepo.DailySeries(ctx, palenqueID, serieFrom, serieTo)
		serieCh <- serieResult{rows, err}
	}()

	total := <-totalCh
	mes := <-mesCh
	conv := <-convCh
	funnel := <-funnelCh
	origen := <-origenCh
	serie := <-serieCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de leads: %w", total.err)
	}
	if mes.err != nil {
		return nil, fmt.Errorf("dashboard: leads del mes: %w", mes.err)
	}
	if conv.err != nil {
		return nil, fmt.Errorf("dashboard: leads convertidos: %w", conv.err)
	}
	if funnel.err != nil {
		return nil, fmt.Errorf("dashboard: funnel por estado: %w", funnel.err)
	}
	if origen.err != nil {
		return nil, fmt.Errorf("dashboard: capturas por origen: %w", origen.err)
	}
	if serie.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", serie.err)
	}

	// El funnel siempre expone las seis llaves del enum, aunque el agregado
	// no haya devuelto filas para algún estado.
	funnelMap := make(map[string]int, len(entity.LeadEstados))
	for _, estado := range entity.LeadEstados {
		funnelMap[estado] = 0
	}
	for _, row := range funnel.rows {
		funnelMap[row.Estado] = row.Total
	}

	origenMap := make(map[string]int, len(origen.rows))
	for _, row := range origen.rows {
		origenMap[row.Origen] = row.Total
	}

	tasa := 0.0
	if total.total > 0 {
		tasa = float64(conv.total) / float64(total.total)
	}

	puntos := make([]dto.SerieDiariaDTO, 0, len(serie.rows))
	for _, row := range serie.rows {
		puntos = append(puntos, dto.SerieDiariaDTO{
			Fecha:       row.Dia.Format("2006-01-02"),
			Capturados:  row.Capturados,
			Convertidos: row.Convertidos,
		})
	}

	return &dto.DashboardMetricsDTO{
		PalenqueID:     palenqueID,
		TotalLeads:     total.total,
		LeadsDelMes:    mes.total,
		Funnel:         funnelMap,
		PorOrigen:      origenMap,
		TasaConversion: tasa,
		Serie30Dias:    puntos,
	}, nil
}
