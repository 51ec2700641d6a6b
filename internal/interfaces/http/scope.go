package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/authz"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/domain"
)

// scopeFromCtx resuelve el alcance de tenant de la petición a partir de los
// claims del middleware de auth y el query param palenque_id (solo lo usan
// admin/superadmin). En error el handler responde con respondScopeError.
func scopeFromCtx(c *fiber.Ctx) (authz.Scope, error) {
	requested := int64(c.QueryInt("palenque_id"))
	return authz.Resolve(GetRole(c), GetPalenqueID(c), requested)
}

func respondScopeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTenantRequired):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TENANT_REQUIRED", Error: "la sesión no tiene palenque asignado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "palenque_id es requerido para este rol"})
	default:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Error: "sesión inválida"})
	}
}

// respondError mapea los errores de dominio al contrato HTTP. Cualquier error
// no reconocido se convierte en un 500 genérico para no filtrar detalles
// internos al caller.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Error: "credenciales inválidas"})
	case errors.Is(err, domain.ErrTenantRequired), errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Error: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Error: "error interno"})
	}
}
