package repository

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/domain/entity"
)

// NewsletterRepository puerto del almacén de suscriptores del boletín.
// La implementación es un archivo JSON plano, no la base relacional.
type NewsletterRepository interface {
	// Add agrega un suscriptor; devuelve domain.ErrDuplicate si el email ya existe.
	Add(ctx context.Context, sub *entity.NewsletterSubscriber) error
	List(ctx context.Context) ([]*entity.NewsletterSubscriber, error)
}
