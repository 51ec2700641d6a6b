package repository

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product y sus
// presentaciones. Create y CreatePresentacion se invocan dentro de una misma
// transacción (ver postgres.TxRunner) para que un producto nunca quede sin
// presentaciones.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	CreatePresentacion(ctx context.Context, pr *entity.Presentacion) error
	GetByID(ctx context.Context, palenqueID, id int64) (*entity.Product, error)
	ListByPalenque(ctx context.Context, palenqueID int64, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	SetActivo(ctx context.Context, palenqueID, id int64, activo bool) error
}
