package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/torressantiago/agencia-crm/internal/application/dto"
	"github.com/torressantiago/agencia-crm/internal/application/usecase"
)

// ProductHandler maneja el catálogo de productos del palenque en sesión.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto con sus presentaciones (transaccional)
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "producto + presentaciones"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	product, err := h.uc.Create(c.Context(), scope, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List lista los productos del palenque en sesión.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "query params inválidos"})
	}
	page.DefaultPage()
	products, err := h.uc.List(c.Context(), scope, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetByID devuelve un producto con sus presentaciones.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	product, err := h.uc.Get(c.Context(), scope, int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// Update actualiza la cabecera del producto (no las presentaciones).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Error: "cuerpo inválido"})
	}
	product, err := h.uc.Update(c.Context(), scope, int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// SetActivo activa o desactiva un producto (borrado lógico).
func (h *ProductHandler) SetActivo(c *fiber.Ctx) error {
	scope, err := scopeFromCtx(c)
	if err != nil {
		return respondScopeError(c, err)
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "id inválido"})
	}
	var in struct {
		Activo *bool `json:"activo"`
	}
	if err := c.BodyParser(&in); err != nil || in.Activo == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Error: "activo es requerido"})
	}
	if err := h.uc.SetActivo(c.Context(), scope, int64(id), *in.Activo); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
