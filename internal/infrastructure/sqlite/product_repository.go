package sqlite

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/oaky-desktop/internal/domain"
	"github.com/jhoicas/oaky-desktop/internal/domain/entity"
	"github.com/jhoicas/oaky-desktop/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productRecord fila de la tabla products. El mapeo vive en infraestructura;
// la entidad de dominio no lleva tags de persistencia.
type productRecord struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Barcode   string          `gorm:"uniqueIndex:idx_products_barcode;not null"`
	Name      string          `gorm:"index:idx_products_name;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (productRecord) TableName() string { return "products" }

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Search busca por barcode (sensible a mayúsculas, instr) o por nombre
// (insensible, LIKE), ordenado por nombre. Un término en blanco devuelve
// todo; en otro caso el término se usa tal cual, espacios incluidos.
func (r *ProductRepo) Search(term string) ([]*entity.Product, error) {
	q := r.db.Order("name ASC")
	if strings.TrimSpace(term) != "" {
		q = q.Where("instr(barcode, ?) > 0 OR name LIKE ?", term, "%"+term+"%")
	}
	var recs []productRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, storageError("buscar productos", err)
	}
	return toEntities(recs), nil
}

// ListAll devuelve todos los productos en orden de almacenamiento (id).
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	var recs []productRecord
	if err := r.db.Order("id ASC").Find(&recs).Error; err != nil {
		return nil, storageError("listar productos", err)
	}
	return toEntities(recs), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var rec productRecord
	err := r.db.First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("obtener producto", err)
	}
	return toEntity(rec), nil
}

// GetByBarcode obtiene un producto por código de barras. (nil, nil) si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	var rec productRecord
	err := r.db.First(&rec, "barcode = ?", barcode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("obtener producto por barcode", err)
	}
	return toEntity(rec), nil
}

// Create persiste un producto nuevo y asigna product.ID.
// Barcode duplicado devuelve ErrDuplicate sin tocar la fila existente.
func (r *ProductRepo) Create(product *entity.Product) error {
	rec := toRecord(product)
	if err := r.db.Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storageError("insertar producto", err)
	}
	product.ID = rec.ID
	return nil
}

// UpdateByID reescribe barcode, name, price y stock. Refresca updated_at.
// Una reescritura de barcode que colisione devuelve ErrDuplicate.
func (r *ProductRepo) UpdateByID(product *entity.Product) error {
	tx := r.db.Model(&productRecord{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"barcode":    product.Barcode,
		"name":       product.Name,
		"price":      product.Price,
		"stock":      product.Stock,
		"updated_at": time.Now(),
	})
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return domain.ErrDuplicate
		}
		return storageError("actualizar producto", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateByBarcode reescribe name, price y stock; el barcode no cambia en esta vía.
func (r *ProductRepo) UpdateByBarcode(barcode, name string, price decimal.Decimal, stock int) error {
	tx := r.db.Model(&productRecord{}).Where("barcode = ?", barcode).Updates(map[string]interface{}{
		"name":       name,
		"price":      price,
		"stock":      stock,
		"updated_at": time.Now(),
	})
	if tx.Error != nil {
		return storageError("actualizar producto por barcode", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateNamePrice reescribe solo name y price (vía de reconciliación del
// import: el stock almacenado se deja intacto a propósito).
func (r *ProductRepo) UpdateNamePrice(barcode, name string, price decimal.Decimal) error {
	tx := r.db.Model(&productRecord{}).Where("barcode = ?", barcode).Updates(map[string]interface{}{
		"name":       name,
		"price":      price,
		"updated_at": time.Now(),
	})
	if tx.Error != nil {
		return storageError("reconciliar producto", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila con ese ID. ErrNotFound si no había fila.
func (r *ProductRepo) Delete(id int64) error {
	tx := r.db.Delete(&productRecord{}, id)
	if tx.Error != nil {
		return storageError("eliminar producto", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BulkUpdatePrice aplica el multiplicador en UNA sola sentencia, de modo que
// el conjunto afectado es el que cumple el filtro en el momento de ejecutar.
func (r *ProductRepo) BulkUpdatePrice(percentage decimal.Decimal, ids []int64) (int64, error) {
	multiplier := decimal.NewFromInt(1).Add(percentage.Div(decimal.NewFromInt(100)))
	now := time.Now()

	var tx *gorm.DB
	if len(ids) > 0 {
		tx = r.db.Exec(
			`UPDATE products SET price = ROUND(price * ?, 2), updated_at = ? WHERE id IN ?`,
			multiplier.InexactFloat64(), now, ids,
		)
	} else {
		tx = r.db.Exec(
			`UPDATE products SET price = ROUND(price * ?, 2), updated_at = ?`,
			multiplier.InexactFloat64(), now,
		)
	}
	if tx.Error != nil {
		return 0, storageError("actualización masiva de precios", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Stats recalcula los agregados desde cero (sin contadores materializados).
func (r *ProductRepo) Stats(lowStockBelow int) (*repository.InventoryStats, error) {
	var stats repository.InventoryStats

	row := r.db.Model(&productRecord{}).
		Select("COUNT(*), COALESCE(SUM(price * stock), 0), COALESCE(SUM(stock), 0)").
		Row()
	if err := row.Scan(&stats.TotalProducts, &stats.TotalValue, &stats.TotalStock); err != nil {
		return nil, storageError("agregados de inventario", err)
	}
	stats.TotalValue = stats.TotalValue.Round(2)

	if err := r.db.Model(&productRecord{}).
		Where("stock < ?", lowStockBelow).
		Count(&stats.LowStock).Error; err != nil {
		return nil, storageError("conteo de stock bajo", err)
	}
	return &stats, nil
}

func toRecord(p *entity.Product) productRecord {
	return productRecord{
		ID:        p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toEntity(rec productRecord) *entity.Product {
	return &entity.Product{
		ID:        rec.ID,
		Barcode:   rec.Barcode,
		Name:      rec.Name,
		Price:     rec.Price,
		Stock:     rec.Stock,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toEntities(recs []productRecord) []*entity.Product {
	list := make([]*entity.Product, 0, len(recs))
	for _, rec := range recs {
		list = append(list, toEntity(rec))
	}
	return list
}
