package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de vencimiento derivados de ExpiryDate.
const (
	ExpiryNone     = "none"           // sin control de vencimiento
	ExpiryExpired  = "expired"        // ya vencido
	ExpirySoon     = "expiring-soon"  // vence en 7 días o menos
	ExpiryMonth    = "expiring-month" // vence en 30 días o menos
	ExpiryFresh    = "fresh"
)

// DefaultLowStockThreshold umbral de stock bajo cuando el producto no define uno.
const DefaultLowStockThreshold = 10

// Product representa un producto del inventario. Quantity solo se modifica vía
// movimientos de stock; Price/CostPrice vía edición o ajustes masivos.
type Product struct {
	ID                string
	Name              string
	Description       string
	CategoryID        string // referencia obligatoria a Category
	Supplier          string
	SKU               string
	Barcode           string
	Location          string
	CostPrice         decimal.Decimal // >= 0
	Price             decimal.Decimal // precio de venta, >= 0
	Quantity          int64           // >= 0, unidades enteras
	LowStockThreshold int64           // >= 0
	HasExpiry         bool
	ExpiryDate        *time.Time
	Discontinued      bool
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StockValue valor del stock a precio de venta: Price * Quantity.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(p.Quantity))
}

// ProfitPerUnit ganancia unitaria: Price - CostPrice.
func (p *Product) ProfitPerUnit() decimal.Decimal {
	return p.Price.Sub(p.CostPrice)
}

// TotalProfit ganancia total del stock actual: (Price - CostPrice) * Quantity.
func (p *Product) TotalProfit() decimal.Decimal {
	return p.ProfitPerUnit().Mul(decimal.NewFromInt(p.Quantity))
}

// IsLowStock indica si la cantidad está estrictamente por debajo del umbral.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.LowStockThreshold
}

// DaysUntilExpiry días hasta el vencimiento, redondeando hacia arriba
// (ceil((ExpiryDate - now) / 24h)). Negativo si ya venció.
func (p *Product) DaysUntilExpiry(now time.Time) int {
	if p.ExpiryDate == nil {
		return 0
	}
	return int(math.Ceil(p.ExpiryDate.Sub(now).Hours() / 24))
}

// ExpiryStatus clasifica el vencimiento respecto a now:
// none, expired, expiring-soon (<=7d), expiring-month (<=30d) o fresh.
func (p *Product) ExpiryStatus(now time.Time) string {
	if !p.HasExpiry || p.ExpiryDate == nil {
		return ExpiryNone
	}
	days := p.DaysUntilExpiry(now)
	switch {
	case days < 0:
		return ExpiryExpired
	case days <= 7:
		return ExpirySoon
	case days <= 30:
		return ExpiryMonth
	default:
		return ExpiryFresh
	}
}
