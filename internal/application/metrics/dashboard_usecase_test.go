package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmetrics "github.com/torressantiago/agencia-crm/internal/application/metrics"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

// fakeMetricsRepo implementa repository.MetricsRepository con valores fijos.
type fakeMetricsRepo struct {
	total       int
	mes         int
	convertidos int
	funnel      []repository.FunnelCount
	origenes    []repository.OrigenCount
	serie       []repository.DailyLeadCount

	funnelErr error
}

func (f *fakeMetricsRepo) CountLeads(context.Context, int64) (int, error) {
	return f.total, nil
}

func (f *fakeMetricsRepo) CountLeadsSince(context.Context, int64, time.Time) (int, error) {
	return f.mes, nil
}

func (f *fakeMetricsRepo) CountConvertidos(context.Context, int64) (int, error) {
	return f.convertidos, nil
}

func (f *fakeMetricsRepo) CountByEstado(context.Context, int64) ([]repository.FunnelCount, error) {
	return f.funnel, f.funnelErr
}

func (f *fakeMetricsRepo) CountByOrigen(context.Context, int64) ([]repository.OrigenCount, error) {
	return f.origenes, nil
}

func (f *fakeMetricsRepo) DailySeries(context.Context, int64, time.Time, time.Time) ([]repository.DailyLeadCount, error) {
	return f.serie, nil
}

// El funnel siempre trae las seis llaves del enum, aunque los agregados
// devuelvan filas solo para algunos estados.
func TestGetMetrics_FunnelSiempreConSeisLlaves(t *testing.T) {
	repo := &fakeMetricsRepo{
		total:       10,
		mes:         4,
		convertidos: 2,
		funnel: []repository.FunnelCount{
			{Estado: "nuevo", Total: 8},
			{Estado: "convertido", Total: 2},
		},
	}
	uc := appmetrics.NewDashboardUseCase(repo)

	out, err := uc.GetMetrics(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, out.Funnel, 6, "el funnel debe exponer los seis estados")
	assert.Equal(t, 8, out.Funnel["nuevo"])
	assert.Equal(t, 2, out.Funnel["convertido"])
	assert.Equal(t, 0, out.Funnel["contactado"])
	assert.Equal(t, 0, out.Funnel["respondio"])
	assert.Equal(t, 0, out.Funnel["inactivo"])
	assert.Equal(t, 0, out.Funnel["opt_out"])
}

// Sin leads, la tasa de conversión es 0 (nunca NaN ni división por cero).
func TestGetMetrics_SinLeads_TasaCero(t *testing.T) {
	uc := appmetrics.NewDashboardUseCase(&fakeMetricsRepo{})

	out, err := uc.GetMetrics(context.Background(), 3)
	require.NoError(t, err)

	assert.Zero(t, out.TotalLeads)
	assert.Zero(t, out.TasaConversion)
	require.Len(t, out.Funnel, 6)
}

func TestGetMetrics_CalculaTasaDeConversion(t *testing.T) {
	uc := appmetrics.NewDashboardUseCase(&fakeMetricsRepo{total: 8, convertidos: 2})

	out, err := uc.GetMetrics(context.Background(), 3)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, out.TasaConversion, 1e-9)
}

// Si cualquiera de las consultas falla, se devuelve un único error agregado;
// nunca un resumen parcial.
func TestGetMetrics_ConsultaFallida_ErrorSinResumenParcial(t *testing.T) {
	repo := &fakeMetricsRepo{
		total:     10,
		funnelErr: errors.New("timeout de la base"),
	}
	uc := appmetrics.NewDashboardUseCase(repo)

	out, err := uc.GetMetrics(context.Background(), 3)
	require.Error(t, err)
	assert.Nil(t, out, "con error no debe devolverse resumen parcial")
	assert.Contains(t, err.Error(), "funnel")
}

// La serie diaria se serializa con fecha YYYY-MM-DD.
func TestGetMetrics_SerieDiariaFormateada(t *testing.T) {
	dia := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeMetricsRepo{
		serie: []repository.DailyLeadCount{
			{Dia: dia, Capturados: 3, Convertidos: 1},
		},
	}
	uc := appmetrics.NewDashboardUseCase(repo)

	out, err := uc.GetMetrics(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, out.Serie30Dias, 1)
	assert.Equal(t, "2026-08-01", out.Serie30Dias[0].Fecha)
	assert.Equal(t, 3, out.Serie30Dias[0].Capturados)
	assert.Equal(t, 1, out.Serie30Dias[0].Convertidos)
}
