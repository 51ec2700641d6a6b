package repository

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// PalenqueRepository define el puerto de persistencia para Palenque.
type PalenqueRepository interface {
	Create(ctx context.Context, p *entity.Palenque) error
	GetByID(ctx context.Context, id int64) (*entity.Palenque, error)
	Update(ctx context.Context, p *entity.Palenque) error
	SetActivo(ctx context.Context, id int64, activo bool) error
	List(ctx context.Context, limit, offset int) ([]*entity.Palenque, error)
}
