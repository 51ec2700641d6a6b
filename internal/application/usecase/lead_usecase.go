package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/torressantiago/agencia-crm/internal/application/authz"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
	"github.com/torressantiago/agencia-crm/pkg/logger"
)

// Defaults de captura: si el formulario no trae calificación ni aceptación de
// ofertas, se asume la mejor experiencia y el opt-in.
const (
	defaultCalificacion = 5
)

// LeadUseCase casos de uso del funnel de leads: captura pública, listado
// acotado al tenant y transiciones de estado. Los leads nunca se borran.
type LeadUseCase struct {
	leadRepo     repository.LeadRepository
	palenqueRepo repository.PalenqueRepository
	forwarder    LeadForwarder
	email        EmailSender
	notifyTo     string // buzón interno de la agencia
	log          *logger.Logger
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(
	leadRepo repository.LeadRepository,
	palenqueRepo repository.PalenqueRepository,
	forwarder LeadForwarder,
	email EmailSender,
	notifyTo string,
	log *logger.Logger,
) *LeadUseCase {
	return &LeadUseCase{
		leadRepo:     leadRepo,
		palenqueRepo: palenqueRepo,
		forwarder:    forwarder,
		email:        email,
		notifyTo:     notifyTo,
		log:          log,
	}
}

// Capture registra un lead nuevo desde el formulario público o el webhook de
// intake y reenvía el payload (con defaults aplicados) al webhook de
// automatización. Los fallos de los colaboradores externos se registran pero
// no revierten la captura: el lead ya quedó persistido.
func (uc *LeadUseCase) Capture(ctx context.Context, in dto.LeadCaptureRequest) (*dto.LeadResponse, error) {
	if in.PalenqueID <= 0 || in.Nombre == "" || in.Telefono == "" {
		return nil, domain.ErrInvalidInput
	}
	palenque, err := uc.palenqueRepo.GetByID(ctx, in.PalenqueID)
	if err != nil {
		return nil, err
	}
	if palenque == nil || !palenque.Activo {
		return nil, domain.ErrNotFound
	}

	calificacion := defaultCalificacion
	if in.ExperienciaCalificacion != nil {
		calificacion = *in.ExperienciaCalificacion
	}
	if calificacion < 1 || calificacion > 5 {
		return nil, domain.ErrInvalidInput
	}
	acepto := true
	if in.AceptoOfertas != nil {
		acepto = *in.AceptoOfertas
	}
	origen := in.Origen
	if origen == "" {
		origen = entity.LeadOrigenFormulario
	}

	now := time.Now()
	lead := &entity.Lead{
		PalenqueID:              in.PalenqueID,
		Nombre:                  in.Nombre,
		Telefono:                in.Telefono,
		Email:                   in.Email,
		Origen:                  origen,
		Estado:                  entity.LeadEstadoNuevo,
		ExperienciaCalificacion: calificacion,
		AceptoOfertas:           acepto,
		Notas:                   in.Notas,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	forward := dto.LeadCaptureForward{
		LeadID:                  lead.ID,
		PalenqueID:              lead.PalenqueID,
		Nombre:                  lead.Nombre,
		Telefono:                lead.Telefono,
		Email:                   lead.Email,
		Origen:                  lead.Origen,
		ExperienciaCalificacion: lead.ExperienciaCalificacion,
		AceptoOfertas:           lead.AceptoOfertas,
		Fecha:                   lead.CreatedAt,
	}
	if err := uc.forwarder.ForwardCapture(ctx, forward); err != nil {
		uc.log.Warn().Err(err).Int64("lead_id", lead.ID).Msg("reenvío de captura al webhook falló")
	}
	if uc.notifyTo != "" {
		subject := fmt.Sprintf("Nuevo lead para %s", palenque.Nombre)
		html := fmt.Sprintf("<p>%s (%s) capturado vía %s.</p>", lead.Nombre, lead.Telefono, lead.Origen)
		if err := uc.email.Send(ctx, uc.notifyTo, subject, html); err != nil {
			uc.log.Warn().Err(err).Int64("lead_id", lead.ID).Msg("aviso de captura por email falló")
		}
	}

	return toLeadResponse(lead), nil
}

// List devuelve los leads del scope con filtros y paginación.
func (uc *LeadUseCase) List(ctx context.Context, scope authz.Scope, in dto.LeadListRequest) ([]dto.LeadResponse, error) {
	if in.Estado != "" && !entity.EstadoValido(in.Estado) {
		return nil, domain.ErrInvalidStatus
	}
	in.DefaultPage()
	leads, err := uc.leadRepo.ListByPalenque(ctx, scope.PalenqueID,
		repository.LeadFilter{Estado: in.Estado, Origen: in.Origen}, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, *toLeadResponse(l))
	}
	return out, nil
}

// Get devuelve un lead del scope. ErrNotFound cubre tanto el lead inexistente
// como el de otro tenant: no se revela cuál de los dos fue.
func (uc *LeadUseCase) Get(ctx context.Context, scope authz.Scope, id int64) (*dto.LeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(ctx, scope.PalenqueID, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	return toLeadResponse(lead), nil
}

// UpdateEstado aplica una transición de estado. Un valor fuera del enum se
// rechaza sin mutar la fila.
func (uc *LeadUseCase) UpdateEstado(ctx context.Context, scope authz.Scope, id int64, estado string) error {
	if !entity.EstadoValido(estado) {
		return domain.ErrInvalidStatus
	}
	return uc.leadRepo.UpdateEstado(ctx, scope.PalenqueID, id, estado)
}

// UpdateNotas reemplaza las notas de seguimiento del lead.
func (uc *LeadUseCase) UpdateNotas(ctx context.Context, scope authz.Scope, id int64, notas string) error {
	return uc.leadRepo.UpdateNotas(ctx, scope.PalenqueID, id, notas)
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:                      l.ID,
		PalenqueID:              l.PalenqueID,
		Nombre:                  l.Nombre,
		Telefono:                l.Telefono,
		Email:                   l.Email,
		Origen:                  l.Origen,
		Estado:                  l.Estado,
		ExperienciaCalificacion: l.ExperienciaCalificacion,
		AceptoOfertas:           l.AceptoOfertas,
		Notas:                   l.Notas,
		CreatedAt:               l.CreatedAt,
		UpdatedAt:               l.UpdatedAt,
	}
}
