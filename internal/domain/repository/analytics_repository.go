package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductSalesResult resultado crudo de la consulta de ventas por producto.
// Lo produce la DB; el use case lo convierte en sugerencias de reposición.
type ProductSalesResult struct {
	ProductID string
	UnitsSold int64 // suma de magnitudes de movimientos type=sale en la ventana
}

// MovementTypeSummary agregado de movimientos por tipo en una ventana de tiempo.
type MovementTypeSummary struct {
	Type          string
	Count         int64
	TotalQuantity int64
	TotalValue    decimal.Decimal
}

// AnalyticsRepository define las consultas de lectura para analítica.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesByProduct suma las unidades vendidas (type=sale) por producto
	// desde `since` hasta ahora.
	GetSalesByProduct(ctx context.Context, since time.Time) ([]ProductSalesResult, error)

	// GetMovementSummary agrupa movimientos por tipo en el rango dado.
	// From/To nil significan sin cota.
	GetMovementSummary(ctx context.Context, from, to *time.Time) ([]MovementTypeSummary, error)
}
