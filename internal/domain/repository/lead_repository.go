package repository

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// LeadFilter filtros opcionales para listados de leads.
type LeadFilter struct {
	Estado string // vacío = todos
	Origen string // vacío = todos
}

// LeadRepository define el puerto de persistencia para Lead. Todas las
// operaciones de lectura y mutación llevan el palenqueID como filtro
// obligatorio; los métodos de mutación verifican la pertenencia de la fila
// en el WHERE, así un ID adivinado de otro tenant afecta cero filas.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, palenqueID, id int64) (*entity.Lead, error)
	ListByPalenque(ctx context.Context, palenqueID int64, f LeadFilter, limit, offset int) ([]*entity.Lead, error)
	// UpdateEstado cambia el estado del lead. Devuelve domain.ErrNotFound si la
	// fila no existe o pertenece a otro palenque.
	UpdateEstado(ctx context.Context, palenqueID, id int64, estado string) error
	UpdateNotas(ctx context.Context, palenqueID, id int64, notas string) error
}
