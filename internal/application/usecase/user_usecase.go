package usecase

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

// UserUseCase administración de usuarios (solo admin/superadmin). El alta se
// hace vía auth.Register; aquí van listado y activación.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List lista todos los usuarios, o los de un palenque si palenqueID > 0.
func (uc *UserUseCase) List(ctx context.Context, palenqueID int64, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	var (
		users []*entity.User
		err   error
	)
	if palenqueID > 0 {
		users, err = uc.userRepo.ListByPalenque(ctx, palenqueID, page.Limit, page.Offset)
	} else {
		users, err = uc.userRepo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *ToUserResponse(u))
	}
	return out, nil
}

// SetActivo activa o desactiva una cuenta.
func (uc *UserUseCase) SetActivo(ctx context.Context, id int64, activo bool) error {
	return uc.userRepo.SetActivo(ctx, id, activo)
}

// ToUserResponse convierte la entidad a su DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Nombre:     u.Nombre,
		Role:       u.Role,
		PalenqueID: u.PalenqueID,
		Activo:     u.Activo,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
