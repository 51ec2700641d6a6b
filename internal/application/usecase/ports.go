package usecase

import (
	"context"

	"github.com/torressantiago/agencia-crm/internal/domain/repository"
)

// TxRunner puerto para ejecutar trabajo transaccional. La implementación
// concreta vive en infrastructure/postgres.
type TxRunner interface {
	// RunProducts ejecuta fn con un repositorio de productos atado a una
	// transacción; commit si fn devuelve nil, rollback en caso contrario.
	RunProducts(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// LeadForwarder puerto de salida hacia el webhook de automatización de flujos.
type LeadForwarder interface {
	ForwardCapture(ctx context.Context, payload any) error
}

// EmailSender puerto de salida hacia la API de email transaccional.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// MessageRelay puerto de salida hacia el relay de mensajería (respuestas del chat).
type MessageRelay interface {
	SendText(ctx context.Context, telefono, mensaje string) error
}
