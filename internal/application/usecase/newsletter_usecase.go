package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain"
	"github.com/torressantiago/agencia-crm/internal/domain/entity"
	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

// NewsletterUseCase suscripción y listado del boletín del sitio.
type NewsletterUseCase struct {
	store repository.NewsletterRepository
}

// NewNewsletterUseCase construye el caso de uso.
func NewNewsletterUseCase(store repository.NewsletterRepository) *NewsletterUseCase {
	return &NewsletterUseCase{store: store}
}

// Subscribe da de alta un suscriptor. Email duplicado → domain.ErrDuplicate.
func (uc *NewsletterUseCase) Subscribe(ctx context.Context, in dto.NewsletterSubscribeRequest) (*dto.NewsletterSubscriberResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrInvalidInput
	}
	sub := &entity.NewsletterSubscriber{
		ID:     uuid.New().String(),
		Email:  email,
		Nombre: in.Nombre,
		AltaEn: time.Now(),
		Activo: true,
	}
	if err := uc.store.Add(ctx, sub); err != nil {
		return nil, err
	}
	return toSubscriberResponse(sub), nil
}

// List devuelve todos los suscriptores (solo admin).
func (uc *NewsletterUseCase) List(ctx context.Context) ([]dto.NewsletterSubscriberResponse, error) {
	subs, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NewsletterSubscriberResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, *toSubscriberResponse(s))
	}
	return out, nil
}

func toSubscriberResponse(s *entity.NewsletterSubscriber) *dto.NewsletterSubscriberResponse {
	return &dto.NewsletterSubscriberResponse{
		ID:     s.ID,
		Email:  s.Email,
		Nombre: s.Nombre,
		AltaEn: s.AltaEn,
	}
}
