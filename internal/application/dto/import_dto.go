package dto

// ImportSummary resultado de una importación CSV (merge por barcode).
// Errors conserva el orden de los registros rechazados.
type ImportSummary struct {
	Imported int      `json:"imported"` // barcodes nuevos insertados
	Updated  int      `json:"updated"`  // barcodes existentes actualizados
	Total    int      `json:"total"`    // registros vistos, válidos o no
	Errors   []string `json:"errors"`
}
