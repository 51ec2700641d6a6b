package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un palenque (ej. un mezcal).
// Todo producto tiene al menos una presentación; un producto sin presentaciones
// se rechaza al crear.
type Product struct {
	ID             int64
	PalenqueID     int64
	Nombre         string
	Categoria      string
	Descripcion    string
	ImagenURL      string
	Activo         bool
	Presentaciones []Presentacion
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Presentacion es una variante de venta del producto: volumen en mililitros,
// precio y existencias (el stock puede ser cero, nunca negativo).
type Presentacion struct {
	ID        int64
	ProductID int64
	VolumenML int
	Precio    decimal.Decimal
	Stock     int
}
