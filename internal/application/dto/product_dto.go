package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PresentacionRequest variante de venta del producto. Precio viene como string
// decimal ("450.00") para no perder precisión.
type PresentacionRequest struct {
	VolumenML int             `json:"volumen_ml" validate:"required,min=1"`
	Precio    decimal.Decimal `json:"precio" validate:"required"`
	Stock     int             `json:"stock" validate:"min=0"`
}

// CreateProductRequest entrada para crear un producto con sus presentaciones.
// Debe traer al menos una presentación.
type CreateProductRequest struct {
	Nombre         string                `json:"nombre" validate:"required,min=1,max=200"`
	Categoria      string                `json:"categoria" validate:"omitempty,max=100"`
	Descripcion    string                `json:"descripcion" validate:"omitempty,max=2000"`
	ImagenURL      string                `json:"imagen_url" validate:"omitempty,url"`
	Presentaciones []PresentacionRequest `json:"presentaciones" validate:"required,min=1,dive"`
}

// UpdateProductRequest entrada para actualizar la cabecera del producto.
type UpdateProductRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Categoria   string `json:"categoria" validate:"omitempty,max=100"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=2000"`
	ImagenURL   string `json:"imagen_url" validate:"omitempty,url"`
}

// PresentacionResponse salida de una presentación.
type PresentacionResponse struct {
	ID        int64           `json:"id"`
	VolumenML int             `json:"volumen_ml"`
	Precio    decimal.Decimal `json:"precio"`
	Stock     int             `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64                  `json:"id"`
	PalenqueID     int64                  `json:"palenque_id"`
	Nombre         string                 `json:"nombre"`
	Categoria      string                 `json:"categoria,omitempty"`
	Descripcion    string                 `json:"descripcion,omitempty"`
	ImagenURL      string                 `json:"imagen_url,omitempty"`
	Activo         bool                   `json:"activo"`
	Presentaciones []PresentacionResponse `json:"presentaciones"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
