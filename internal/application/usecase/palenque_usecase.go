package usecase

import (
	"context"
	"time"

	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

// PalenqueUseCase administración de tenants (solo admin/superadmin).
type PalenqueUseCase struct {
	palenqueRepo repository.PalenqueRepository
}

// NewPalenqueUseCase construye el caso de uso.
func NewPalenqueUseCase(palenqueRepo repository.PalenqueRepository) *PalenqueUseCase {
	return &PalenqueUseCase{palenqueRepo: palenqueRepo}
}

// Create da de alta un palenque. Plan por defecto: basico.
func (uc *PalenqueUseCase) Create(ctx context.Context, in dto.CreatePalenqueRequest) (*dto.PalenqueResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	plan := in.Plan
	if plan == "" {
		plan = entity.PlanBasico
	}
	now := time.Now()
	p := &entity.Palenque{
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		Plan:      plan,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.palenqueRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPalenqueResponse(p), nil
}

// Get obtiene un palenque por ID.
func (uc *PalenqueUseCase) Get(ctx context.Context, id int64) (*dto.PalenqueResponse, error) {
	p, err := uc.palenqueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPalenqueResponse(p), nil
}

// List lista palenques con paginación.
func (uc *PalenqueUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.PalenqueResponse, error) {
	page.DefaultPage()
	list, err := uc.palenqueRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PalenqueResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPalenqueResponse(p))
	}
	return out, nil
}

// Update actualiza los datos del palenque.
func (uc *PalenqueUseCase) Update(ctx context.Context, id int64, in dto.UpdatePalenqueRequest) (*dto.PalenqueResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.palenqueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	existing.Nombre = in.Nombre
	existing.Contacto = in.Contacto
	existing.Email = in.Email
	existing.Telefono = in.Telefono
	existing.Direccion = in.Direccion
	if in.Plan != "" {
		existing.Plan = in.Plan
	}
	existing.UpdatedAt = time.Now()
	if err := uc.palenqueRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return toPalenqueResponse(existing), nil
}

// SetActivo activa o suspende el palenque.
func (uc *PalenqueUseCase) SetActivo(ctx context.Context, id int64, activo bool) error {
	return uc.palenqueRepo.SetActivo(ctx, id, activo)
}

func toPalenqueResponse(p *entity.Palenque) *dto.PalenqueResponse {
	return &dto.PalenqueResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Contacto:  p.Contacto,
		Email:     p.Email,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		Plan:      p.Plan,
		Activo:    p.Activo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
