// Package csvfile traduce entre texto tabular (CSV) y la forma de registro
// del repositorio. La coerción de campos (trim, parseo numérico tolerante)
// vive aquí como paso puro de parse-and-validate, desacoplada de la
// persistencia.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/oaky-desktop/internal/domain/entity"
)

// Header columnas del formato de intercambio, en orden de exportación.
var Header = []string{"barcode", "name", "price", "stock"}

// RawRecord un registro tal como llega del archivo, sin coerción.
type RawRecord struct {
	Barcode string
	Name    string
	Price   string
	Stock   string
	Line    int // línea del archivo, para mensajes de error
}

// Record un registro ya validado y tipado, listo para reconciliar.
type Record struct {
	Barcode string
	Name    string
	Price   decimal.Decimal
	Stock   int
}

// ValidationError registro rechazado durante el parseo. Identifica el
// registro por su barcode (o "desconocido" si venía vacío).
type ValidationError struct {
	Barcode string
	Reason  string
}

func (e *ValidationError) Error() string {
	barcode := e.Barcode
	if barcode == "" {
		barcode = "desconocido"
	}
	return fmt.Sprintf("datos inválidos: %s (%s)", barcode, e.Reason)
}

// Read lee el CSV completo: fila de encabezado barcode,name,price,stock
// (la columna stock es opcional) y un registro por línea.
func Read(r io.Reader) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Filas con menos (o más) campos que el encabezado no abortan la
	// lectura: los campos faltantes llegan vacíos y se rechazan registro
	// por registro en Parse.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado CSV: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"barcode", "name", "price"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("el CSV no tiene la columna %q", required)
		}
	}

	var records []RawRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer línea %d: %w", line+1, err)
		}
		line++
		records = append(records, RawRecord{
			Barcode: field(row, cols, "barcode"),
			Name:    field(row, cols, "name"),
			Price:   field(row, cols, "price"),
			Stock:   field(row, cols, "stock"),
			Line:    line,
		})
	}
	return records, nil
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Parse coerciona y valida un registro crudo. Devuelve el registro tipado o
// un *ValidationError; nunca aborta el lote ni toca el repositorio.
func Parse(raw RawRecord) (*Record, error) {
	barcode := strings.TrimSpace(raw.Barcode)
	name := strings.TrimSpace(raw.Name)

	price, err := decimal.NewFromString(strings.TrimSpace(raw.Price))
	if err != nil {
		return nil, &ValidationError{Barcode: barcode, Reason: "precio no numérico"}
	}

	stock := 0
	if s := strings.TrimSpace(raw.Stock); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil {
			return nil, &ValidationError{Barcode: barcode, Reason: "stock no numérico"}
		}
	}

	switch {
	case barcode == "":
		return nil, &ValidationError{Barcode: "", Reason: "barcode vacío"}
	case name == "":
		return nil, &ValidationError{Barcode: barcode, Reason: "nombre vacío"}
	case !price.IsPositive():
		return nil, &ValidationError{Barcode: barcode, Reason: "precio debe ser mayor que cero"}
	}

	return &Record{Barcode: barcode, Name: name, Price: price, Stock: stock}, nil
}

// Write emite el encabezado y una fila por producto, en el orden recibido,
// sin transformación ni filtrado.
func Write(w io.Writer, products []*entity.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("escribir encabezado CSV: %w", err)
	}
	for _, p := range products {
		row := []string{p.Barcode, p.Name, p.Price.StringFixed(2), strconv.Itoa(p.Stock)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("escribir producto %s: %w", p.Barcode, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
