package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El barcode es la clave de
// negocio (único en toda la tienda); el ID lo asigna el almacén al insertar.
type Product struct {
	ID        int64
	Barcode   string // código de barras, inmutable por convención tras crear
	Name      string
	Price     decimal.Decimal // precio de venta, > 0 (validado en la frontera)
	Stock     int             // unidades en existencia, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
