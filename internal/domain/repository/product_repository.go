package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/oaky-desktop/internal/domain/entity"
)

// InventoryStats resultado crudo de los agregados del inventario.
// Lo produce la DB; el use case lo convierte en DTO.
type InventoryStats struct {
	TotalProducts int64
	TotalValue    decimal.Decimal // Σ price * stock, 0 si no hay filas
	TotalStock    int64           // Σ stock, 0 si no hay filas
	LowStock      int64           // filas con stock por debajo del umbral
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven (nil, nil) cuando no hay fila; las escrituras
// traducen fallos del backend a errores de dominio (ErrDuplicate, ErrNotFound,
// ErrStorage) y nunca dejan escapar un fallo crudo del motor.
type ProductRepository interface {
	// Search devuelve los productos cuyo barcode contiene term (sensible a
	// mayúsculas) o cuyo nombre lo contiene (insensible), ordenados por nombre.
	// Con term vacío o solo espacios devuelve todos los productos.
	Search(term string) ([]*entity.Product, error)

	// ListAll devuelve todos los productos en orden de almacenamiento (id).
	ListAll() ([]*entity.Product, error)

	GetByID(id int64) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)

	// Create inserta una fila nueva y asigna product.ID.
	Create(product *entity.Product) error

	// UpdateByID reescribe barcode, name, price y stock de la fila con ese ID.
	// Es la única vía por la que un llamador programático puede cambiar el barcode.
	UpdateByID(product *entity.Product) error

	// UpdateByBarcode reescribe name, price y stock; el barcode es inmutable
	// en esta vía.
	UpdateByBarcode(barcode, name string, price decimal.Decimal, stock int) error

	// UpdateNamePrice reescribe solo name y price (reconciliación de import:
	// el stock almacenado no se toca).
	UpdateNamePrice(barcode, name string, price decimal.Decimal) error

	Delete(id int64) error

	// BulkUpdatePrice aplica price = ROUND(price * (1 + percentage/100), 2) en
	// una sola sentencia sobre las filas de ids, o sobre todas si ids está
	// vacío. Devuelve el número de filas afectadas.
	BulkUpdatePrice(percentage decimal.Decimal, ids []int64) (int64, error)

	// Stats recalcula los agregados desde cero en cada llamada.
	Stats(lowStockBelow int) (*InventoryStats, error)
}
