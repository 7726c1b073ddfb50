package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Barcode string          `json:"barcode" validate:"required,min=1,max=100"`
	Name    string          `json:"name" validate:"required,min=1,max=200"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock" validate:"min=0"`
}

// UpdateByIDRequest entrada para actualizar por ID. Es la única vía que
// permite reescribir el barcode (llamadores programáticos).
type UpdateByIDRequest struct {
	Barcode string          `json:"barcode" validate:"required,min=1,max=100"`
	Name    string          `json:"name" validate:"required,min=1,max=200"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock" validate:"min=0"`
}

// UpdateByBarcodeRequest entrada para actualizar por barcode (el barcode es
// inmutable en esta vía).
type UpdateByBarcodeRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=200"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Barcode   string          `json:"barcode"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
