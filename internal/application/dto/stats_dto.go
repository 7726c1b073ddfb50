package dto

import "github.com/shopspring/decimal"

// StatsResponse agregados del inventario, recalculados en cada llamada.
type StatsResponse struct {
	TotalProducts int64           `json:"total_products"`
	TotalValue    decimal.Decimal `json:"total_value"` // Σ price * stock
	TotalStock    int64           `json:"total_stock"`
	LowStock      int64           `json:"low_stock"`       // filas con stock < LowStockBelow
	LowStockBelow int             `json:"low_stock_below"` // umbral aplicado
}
