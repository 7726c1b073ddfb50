package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/oaky-desktop/internal/application/dto"
	"github.com/jhoicas/oaky-desktop/internal/domain"
)

// userError convierte cualquier fallo en un mensaje en lenguaje llano, el
// equivalente del diálogo de error de la GUI. Nunca se propaga un fallo crudo
// del backend al usuario.
func userError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errors.New("Producto no encontrado")
	case errors.Is(err, domain.ErrDuplicate):
		return errors.New("Ya existe un producto con ese código de barras")
	case errors.Is(err, domain.ErrInvalidInput):
		detail := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		return fmt.Errorf("Datos inválidos: %s", detail)
	default:
		return fmt.Errorf("Error: %v", err)
	}
}

// validateProductInput validación de frontera: la presentación garantiza
// campos requeridos, precio positivo y stock no negativo antes de llamar al
// núcleo (el almacén solo garantiza la unicidad del barcode).
func validateProductInput(barcode, name string, price decimal.Decimal, stock int) error {
	switch {
	case strings.TrimSpace(barcode) == "":
		return fmt.Errorf("%w: el código de barras es requerido", domain.ErrInvalidInput)
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: el nombre es requerido", domain.ErrInvalidInput)
	case !price.IsPositive():
		return fmt.Errorf("%w: el precio debe ser mayor que cero", domain.ErrInvalidInput)
	case stock < 0:
		return fmt.Errorf("%w: el stock no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// parseDecimal coerciona un flag numérico; tolera espacios alrededor.
func parseDecimal(s, label string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s no numérico: %q", domain.ErrInvalidInput, label, s)
	}
	return d, nil
}

// printProducts imprime la tabla de resultados de búsqueda.
func printProducts(w io.Writer, items []dto.ProductResponse) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Sin resultados")
		return
	}
	fmt.Fprintf(w, "%-6s  %-16s  %-32s  %12s  %7s\n", "ID", "BARCODE", "NOMBRE", "PRECIO", "STOCK")
	for _, p := range items {
		fmt.Fprintf(w, "%-6d  %-16s  %-32s  %12s  %7d\n",
			p.ID, p.Barcode, p.Name, p.Price.StringFixed(2), p.Stock)
	}
}
