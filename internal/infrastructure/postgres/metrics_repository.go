package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

var _ repository.MetricsRepository = (*MetricsRepo)(nil)

// MetricsRepo consultas de solo lectura (agregados SQL) para el dashboard.
type MetricsRepo struct {
	q Querier
}

// NewMetricsRepository construye el adaptador de métricas.
func NewMetricsRepository(q Querier) *MetricsRepo {
	return &MetricsRepo{q: q}
}

// CountLeads total de leads del palenque.
func (r *MetricsRepo) CountLeads(ctx context.Context, palenqueID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leads WHERE palenque_id = $1`, palenqueID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("metrics.CountLeads: %w", err)
	}
	return n, nil
}

// CountLeadsSince leads capturados desde la fecha dada (inclusive).
func (r *MetricsRepo) CountLeadsSince(ctx context.Context, palenqueID int64, since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leads WHERE palenque_id = $1 AND created_at >= $2`,
		palenqueID, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("metrics.CountLeadsSince: %w", err)
	}
	return n, nil
}

// CountConvertidos leads en estado convertido.
func (r *MetricsRepo) CountConvertidos(ctx context.Context, palenqueID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leads WHERE palenque_id = $1 AND estado = $2`,
		palenqueID, entity.LeadEstadoConvertido,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("metrics.CountConvertidos: %w", err)
	}
	return n, nil
}

// CountByEstado agrupa los leads por estado. Solo devuelve estados con filas;
// el caso de uso completa los seis del enum con cero.
func (r *MetricsRepo) CountByEstado(ctx context.Context, palenqueID int64) ([]repository.FunnelCount, error) {
	rows, err := r.q.Query(ctx,
		`SELECT estado, COUNT(*) FROM leads WHERE palenque_id = $1 GROUP BY estado`,
		palenqueID,
	)
	if err != nil {
		return nil, fmt.Errorf("metrics.CountByEstado: %w", err)
	}
	defer rows.Close()
	var out []repository.FunnelCount
	for rows.Next() {
		var fc repository.FunnelCount
		if err := rows.Scan(&fc.Estado, &fc.Total); err != nil {
			return nil, fmt.Errorf("metrics.CountByEstado scan: %w", err)
		}
		out = append(out, fc)
	}
	return out, rows.Err()
}

// CountByOrigen agrupa los leads por origen de captura.
func (r *MetricsRepo) CountByOrigen(ctx context.Context, palenqueID int64) ([]repository.OrigenCount, error) {
	rows, err := r.q.Query(ctx,
		`SELECT COALESCE(NULLIF(origen, ''), 'desconocido'), COUNT(*)
		 FROM leads WHERE palenque_id = $1 GROUP BY 1 ORDER BY 2 DESC`,
		palenqueID,
	)
	if err != nil {
		return nil, fmt.Errorf("metrics.CountByOrigen: %w", err)
	}
	defer rows.Close()
	var out []repository.OrigenCount
	for rows.Next() {
		var oc repository.OrigenCount
		if err := rows.Scan(&oc.Origen, &oc.Total); err != nil {
			return nil, fmt.Errorf("metrics.CountByOrigen scan: %w", err)
		}
		out = append(out, oc)
	}
	return out, rows.Err()
}

// DailySeries serie diaria de capturados y convertidos en [from, to].
// generate_series garantiza una fila por día aunque no haya leads.
func (r *MetricsRepo) DailySeries(ctx context.Context, palenqueID int64, from, to time.Time) ([]repository.DailyLeadCount, error) {
	const query = `
	SELECT
	    d.dia::DATE,
	    COUNT(l.id)                                            AS capturados,
	    COUNT(l.id) FILTER (WHERE l.estado = 'convertido')     AS convertidos
	FROM generate_series($2::DATE, $3::DATE, INTERVAL '1 day') AS d(dia)
	LEFT JOIN leads l
	       ON l.palenque_id = $1
	      AND l.created_at::DATE = d.dia::DATE
	GROUP BY d.dia
	ORDER BY d.dia ASC`

	rows, err := r.q.Query(ctx, query, palenqueID, from, to)
	if err != nil {
		return nil, fmt.Errorf("metrics.DailySeries: %w", err)
	}
	defer rows.Close()
	var out []repository.DailyLeadCount
	for rows.Next() {
		var dc repository.DailyLeadCount
		if err := rows.Scan(&dc.Dia, &dc.Capturados, &dc.Convertidos); err != nil {
			return nil, fmt.Errorf("metrics.DailySeries scan: %w", err)
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}
