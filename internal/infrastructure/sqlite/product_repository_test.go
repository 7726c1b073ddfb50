package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/oaky-desktop/internal/domain"
	"github.com/jhoicas/oaky-desktop/internal/domain/entity"
	"github.com/jhoicas/oaky-desktop/internal/infrastructure/sqlite"
	"github.com/jhoicas/oaky-desktop/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestRepo abre un almacén real en un archivo temporal, con el esquema creado.
func newTestRepo(t *testing.T) *sqlite.ProductRepo {
	t.Helper()
	db, err := sqlite.Open(config.DBConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err, "debe abrirse el almacén temporal")
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return sqlite.NewProductRepository(db)
}

// mustCreate inserta un producto y falla el test si no se puede.
func mustCreate(t *testing.T, repo *sqlite.ProductRepo, barcode, name, price string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Barcode: barcode,
		Name:    name,
		Price:   decimal.RequireFromString(price),
		Stock:   stock,
	}
	require.NoError(t, repo.Create(p), "debe crearse el producto %s", barcode)
	require.NotZero(t, p.ID, "el almacén debe asignar un id")
	return p
}

func assertPrice(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got),
		"precio esperado %s, obtenido %s", want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GetByBarcode_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	created := mustCreate(t, repo, "7501234567890", "Café molido 500g", "129.50", 12)

	got, err := repo.GetByBarcode("7501234567890")
	require.NoError(t, err)
	require.NotNil(t, got, "el producto recién creado debe encontrarse")

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "7501234567890", got.Barcode)
	assert.Equal(t, "Café molido 500g", got.Name)
	assertPrice(t, "129.50", got.Price)
	assert.Equal(t, 12, got.Stock)
	assert.False(t, got.CreatedAt.IsZero(), "created_at debe quedar asignado")
	assert.False(t, got.UpdatedAt.IsZero(), "updated_at debe quedar asignado")
}

func TestCreate_BarcodeDuplicado(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "111", "Original", "10.00", 3)

	dup := &entity.Product{
		Barcode: "111",
		Name:    "Impostor",
		Price:   decimal.RequireFromString("99.99"),
		Stock:   50,
	}
	err := repo.Create(dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "un barcode repetido debe fallar, no sobrescribir")

	// La fila existente queda intacta
	got, err := repo.GetByBarcode("111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Original", got.Name)
	assertPrice(t, "10.00", got.Price)
	assert.Equal(t, 3, got.Stock)
}

func TestGetByID_Ausente_DevuelveNilSinError(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.GetByID(9999)
	require.NoError(t, err, "la ausencia no es un error")
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_TerminoVacio_TodoOrdenadoPorNombre(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "300", "Cepillo", "15.00", 1)
	mustCreate(t, repo, "100", "Arroz", "22.00", 5)
	mustCreate(t, repo, "200", "Botella", "8.50", 2)

	for _, term := range []string{"", "   "} {
		list, err := repo.Search(term)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Arroz", list[0].Name)
		assert.Equal(t, "Botella", list[1].Name)
		assert.Equal(t, "Cepillo", list[2].Name)
	}
}

func TestSearch_BarcodeSensibleAMayusculas(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "ABC123", "Martillo", "55.00", 4)

	list, err := repo.Search("ABC")
	require.NoError(t, err)
	assert.Len(t, list, 1, "substring exacto del barcode debe coincidir")

	list, err = repo.Search("abc")
	require.NoError(t, err)
	assert.Empty(t, list, "el barcode se compara sensible a mayúsculas")
}

func TestSearch_NombreInsensibleAMayusculas(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "500", "Martillo", "55.00", 4)

	for _, term := range []string{"martillo", "MARTILLO", "Mart"} {
		list, err := repo.Search(term)
		require.NoError(t, err)
		assert.Len(t, list, 1, "el nombre se compara insensible a mayúsculas (term %q)", term)
	}
}

func TestSearch_EspaciosEnElTermino_SonSignificativos(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "500", "Café con leche", "30.00", 4)

	list, err := repo.Search(" con ")
	require.NoError(t, err)
	assert.Len(t, list, 1, "los espacios interiores del término cuentan en la coincidencia")

	list, err = repo.Search(" Café")
	require.NoError(t, err)
	assert.Empty(t, list, "el término no se recorta antes de comparar")
}

func TestSearch_SinCoincidencias_ListaVacia(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "500", "Martillo", "55.00", 4)

	list, err := repo.Search("inexistente")
	require.NoError(t, err, "la ausencia de coincidencias no es un error")
	assert.Empty(t, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateByID_PermiteReescribirBarcode(t *testing.T) {
	repo := newTestRepo(t)
	p := mustCreate(t, repo, "111", "Original", "10.00", 3)

	p.Barcode = "222"
	p.Name = "Renombrado"
	p.Price = decimal.RequireFromString("12.75")
	p.Stock = 7
	require.NoError(t, repo.UpdateByID(p))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "222", got.Barcode)
	assert.Equal(t, "Renombrado", got.Name)
	assertPrice(t, "12.75", got.Price)
	assert.Equal(t, 7, got.Stock)
}

func TestUpdateByID_ColisionDeBarcode(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "111", "Uno", "10.00", 1)
	p := mustCreate(t, repo, "222", "Dos", "20.00", 2)

	p.Barcode = "111"
	err := repo.UpdateByID(p)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateByBarcode_Inexistente(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.UpdateByBarcode("no-existe", "X", decimal.RequireFromString("1.00"), 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateNamePrice_NoTocaStock(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "111", "Original", "10.00", 8)

	require.NoError(t, repo.UpdateNamePrice("111", "Nuevo nombre", decimal.RequireFromString("11.50")))

	got, err := repo.GetByBarcode("111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Nuevo nombre", got.Name)
	assertPrice(t, "11.50", got.Price)
	assert.Equal(t, 8, got.Stock, "la reconciliación de import no debe tocar el stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_Existente(t *testing.T) {
	repo := newTestRepo(t)
	p := mustCreate(t, repo, "111", "Efímero", "5.00", 0)

	require.NoError(t, repo.Delete(p.ID), "borrar con stock cero también debe funcionar")

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete_Inexistente(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "111", "Superviviente", "5.00", 1)

	err := repo.Delete(9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// El resto del estado queda intacto
	list, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkUpdatePrice
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkUpdatePrice_PorcentajePositivo(t *testing.T) {
	repo := newTestRepo(t)
	p := mustCreate(t, repo, "111", "Caro", "1000.00", 1)

	affected, err := repo.BulkUpdatePrice(decimal.NewFromInt(10), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, _ := repo.GetByID(p.ID)
	assertPrice(t, "1100.00", got.Price)
}

func TestBulkUpdatePrice_PorcentajeNegativo(t *testing.T) {
	repo := newTestRepo(t)
	p := mustCreate(t, repo, "111", "Rebajado", "1000.00", 1)

	affected, err := repo.BulkUpdatePrice(decimal.NewFromInt(-15), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, _ := repo.GetByID(p.ID)
	assertPrice(t, "850.00", got.Price)
}

func TestBulkUpdatePrice_RedondeoADosDecimales(t *testing.T) {
	repo := newTestRepo(t)
	p := mustCreate(t, repo, "111", "Fraccionado", "19.99", 1)

	_, err := repo.BulkUpdatePrice(decimal.NewFromInt(10), nil)
	require.NoError(t, err)

	got, _ := repo.GetByID(p.ID)
	assertPrice(t, "21.99", got.Price) // 19.99 * 1.10 = 21.989 -> 21.99
}

func TestBulkUpdatePrice_SubconjuntoDeIDs(t *testing.T) {
	repo := newTestRepo(t)
	a := mustCreate(t, repo, "111", "Afectado A", "100.00", 1)
	b := mustCreate(t, repo, "222", "Afectado B", "200.00", 1)
	c := mustCreate(t, repo, "333", "Intacto", "300.00", 1)

	affected, err := repo.BulkUpdatePrice(decimal.NewFromInt(10), []int64{a.ID, b.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected, "solo las filas del subconjunto cuentan")

	gotA, _ := repo.GetByID(a.ID)
	gotB, _ := repo.GetByID(b.ID)
	gotC, _ := repo.GetByID(c.ID)
	assertPrice(t, "110.00", gotA.Price)
	assertPrice(t, "220.00", gotB.Price)
	assertPrice(t, "300.00", gotC.Price)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_AlmacenVacio(t *testing.T) {
	repo := newTestRepo(t)

	stats, err := repo.Stats(5)
	require.NoError(t, err, "las estadísticas de un almacén vacío no son un error")
	assert.EqualValues(t, 0, stats.TotalProducts)
	assert.True(t, stats.TotalValue.IsZero(), "valor total debe ser 0, obtenido %s", stats.TotalValue)
	assert.EqualValues(t, 0, stats.TotalStock)
	assert.EqualValues(t, 0, stats.LowStock)
}

func TestStats_Agregados(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "111", "Abundante", "10.50", 10) // valor 105.00
	mustCreate(t, repo, "222", "Escaso", "4.00", 3)      // valor 12.00, stock bajo
	mustCreate(t, repo, "333", "Agotado", "7.25", 0)     // valor 0, stock bajo

	stats, err := repo.Stats(5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalProducts)
	assert.True(t, decimal.RequireFromString("117.00").Equal(stats.TotalValue),
		"valor total esperado 117.00, obtenido %s", stats.TotalValue)
	assert.EqualValues(t, 13, stats.TotalStock)
	assert.EqualValues(t, 2, stats.LowStock, "stock < 5 cuenta como bajo")
}

func TestStats_UmbralConfigurable(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "111", "Medio", "10.00", 7)

	stats, err := repo.Stats(10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.LowStock, "con umbral 10, stock 7 cuenta como bajo")
}

// ──────────────────────────────────────────────────────────────────────────────
// ListAll
// ──────────────────────────────────────────────────────────────────────────────

func TestListAll_OrdenDeAlmacenamiento(t *testing.T) {
	repo := newTestRepo(t)
	mustCreate(t, repo, "900", "Zapato", "10.00", 1)
	mustCreate(t, repo, "100", "Abrigo", "20.00", 1)

	list, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Orden por id de inserción, no por nombre
	assert.Equal(t, "900", list[0].Barcode)
	assert.Equal(t, "100", list[1].Barcode)
}
