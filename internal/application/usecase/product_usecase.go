package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/oaky-desktop/internal/application/dto"
	"github.com/jhoicas/oaky-desktop/internal/domain"
	"github.com/jhoicas/oaky-desktop/internal/domain/entity"
	"github.com/jhoicas/oaky-desktop/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD, búsqueda, precios masivos y estadísticas.
// La validación de formato (precio > 0, campos no vacíos) pertenece a la
// frontera de presentación; aquí solo se interpretan las reglas del almacén.
type ProductUseCase struct {
	repo          repository.ProductRepository
	lowStockBelow int
}

// NewProductUseCase construye el caso de uso. lowStockBelow es el umbral de
// stock bajo para las estadísticas (5 en la configuración por defecto).
func NewProductUseCase(repo repository.ProductRepository, lowStockBelow int) *ProductUseCase {
	return &ProductUseCase{repo: repo, lowStockBelow: lowStockBelow}
}

// Search devuelve los productos que coinciden con term, ordenados por nombre.
// La ausencia de coincidencias es una lista vacía, nunca un error.
func (uc *ProductUseCase) Search(term string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.Search(term)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByBarcode obtiene un producto por código de barras. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Create crea un producto nuevo. Barcode ya existente devuelve ErrDuplicate
// (el constraint del almacén lo garantiza aunque el pre-chequeo pierda la carrera).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByBarcode(in.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		Barcode:   in.Barcode,
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateByID reescribe barcode, name, price y stock de un producto existente.
func (uc *ProductUseCase) UpdateByID(id int64, in dto.UpdateByIDRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Barcode = in.Barcode
	product.Name = in.Name
	product.Price = in.Price
	product.Stock = in.Stock
	product.UpdatedAt = time.Now()
	if err := uc.repo.UpdateByID(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateByBarcode reescribe name, price y stock; el barcode no cambia en esta vía.
func (uc *ProductUseCase) UpdateByBarcode(barcode string, in dto.UpdateByBarcodeRequest) (*dto.ProductResponse, error) {
	if err := uc.repo.UpdateByBarcode(barcode, in.Name, in.Price, in.Stock); err != nil {
		return nil, err
	}
	return uc.GetByBarcode(barcode)
}

// DeleteByID elimina un producto por ID.
func (uc *ProductUseCase) DeleteByID(id int64) error {
	return uc.repo.Delete(id)
}

// DeleteByBarcode resuelve el barcode a un ID y elimina. Un barcode
// desconocido devuelve ErrNotFound sin tocar el estado.
func (uc *ProductUseCase) DeleteByBarcode(barcode string) error {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(product.ID)
}

// BulkUpdatePrice aplica un cambio porcentual de precio en una sola sentencia
// sobre ids, o sobre todos los productos si ids está vacío. Devuelve el número
// de filas afectadas. El rechazo de porcentaje 0 es responsabilidad de la
// frontera, no de este caso de uso.
func (uc *ProductUseCase) BulkUpdatePrice(percentage decimal.Decimal, ids []int64) (int64, error) {
	return uc.repo.BulkUpdatePrice(percentage, ids)
}

// Stats devuelve los agregados del inventario. Sobre un almacén vacío todos
// los valores son cero, sin error.
func (uc *ProductUseCase) Stats() (*dto.StatsResponse, error) {
	stats, err := uc.repo.Stats(uc.lowStockBelow)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		TotalProducts: stats.TotalProducts,
		TotalValue:    stats.TotalValue,
		TotalStock:    stats.TotalStock,
		LowStock:      stats.LowStock,
		LowStockBelow: uc.lowStockBelow,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
