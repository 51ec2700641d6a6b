package repository

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetActivo(ctx context.Context, id int64, activo bool) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	ListByPalenque(ctx context.Context, palenqueID int64, limit, offset int) ([]*entity.User, error)
}
