package repository

import (
	"context"
	"time"
)

// FunnelCount filas del agregado por estado.
type FunnelCount struct {
	Estado string
	Total  int
}

// OrigenCount filas del agregado por origen de captura.
type OrigenCount struct {
	Origen string
	Total  int
}

// DailyLeadCount punto de la serie diaria: leads capturados y convertidos ese día.
type DailyLeadCount struct {
	Dia         time.Time
	Capturados  int
	Convertidos int
}

// MetricsRepository consultas de solo lectura (agregados SQL) para el
// dashboard de un palenque. Cada método es independiente; el caso de uso
// los lanza en paralelo.
type MetricsRepository interface {
	CountLeads(ctx context.Context, palenqueID int64) (int, error)
	CountLeadsSince(ctx context.Context, palenqueID int64, since time.Time) (int, error)
	CountConvertidos(ctx context.Context, palenqueID int64) (int, error)
	CountByEstado(ctx context.Context, palenqueID int64) ([]FunnelCount, error)
	CountByOrigen(ctx context.Context, palenqueID int64) ([]OrigenCount, error)
	DailySeries(ctx context.Context, palenqueID int64, from, to time.Time) ([]DailyLeadCount, error)
}
