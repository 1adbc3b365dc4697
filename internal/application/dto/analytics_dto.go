package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryTotalsDTO totales del inventario a precio de venta y costo.
type InventoryTotalsDTO struct {
	TotalProducts int64           `json:"total_products"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"` // %, 0 si TotalValue es 0
}

// AlertCountsDTO conteos de alertas del dashboard.
type AlertCountsDTO struct {
	LowStock     int64 `json:"low_stock"`
	OutOfStock   int64 `json:"out_of_stock"`
	ExpiringSoon int64 `json:"expiring_soon"`
	Expired      int64 `json:"expired"`
}

// CategoryBreakdownDTO agregado por categoría (solo categorías con productos).
type CategoryBreakdownDTO struct {
	Name         string          `json:"name"`
	ProductCount int64           `json:"product_count"`
	Quantity     int64           `json:"quantity"`
	Value        decimal.Decimal `json:"value"`
}

// TopProductDTO producto en el top-10 por valor de stock.
type TopProductDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Quantity int64           `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// RecentActivityDTO resumen de movimientos de los últimos 30 días.
type RecentActivityDTO struct {
	TotalMovements int64                    `json:"total_movements"`
	ByType         []MovementTypeSummaryDTO `json:"by_type"`
}

// DashboardDTO respuesta de GET /api/analytics/dashboard.
type DashboardDTO struct {
	Inventory         InventoryTotalsDTO     `json:"inventory"`
	Alerts            AlertCountsDTO         `json:"alerts"`
	CategoryBreakdown []CategoryBreakdownDTO `json:"category_breakdown"`
	TopProducts       []TopProductDTO        `json:"top_products"`
	RecentActivity    RecentActivityDTO      `json:"recent_activity"`
}

// CategoryValuationDTO valoración por categoría; productos sin categoría
// resuelta caen en el bucket "Uncategorized".
type CategoryValuationDTO struct {
	Category     string          `json:"category"`
	ProductCount int64           `json:"product_count"`
	Quantity     int64           `json:"quantity"`
	StockValue   decimal.Decimal `json:"stock_value"`
	CostValue    decimal.Decimal `json:"cost_value"`
	Profit       decimal.Decimal `json:"profit"`
}

// ValuationDTO respuesta de GET /api/analytics/valuation.
type ValuationDTO struct {
	TotalProducts   int64                  `json:"total_products"`
	TotalQuantity   int64                  `json:"total_quantity"`
	TotalStockValue decimal.Decimal        `json:"total_stock_value"`
	TotalCostValue  decimal.Decimal        `json:"total_cost_value"`
	TotalProfit     decimal.Decimal        `json:"total_profit"`
	ProfitMargin    decimal.Decimal        `json:"profit_margin"`
	ByCategory      []CategoryValuationDTO `json:"by_category"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

// ExpiryAlertDTO producto con vencimiento dentro de los próximos 30 días (o vencido).
type ExpiryAlertDTO struct {
	ProductID       string    `json:"product_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category,omitempty"`
	Quantity        int64     `json:"quantity"`
	ExpiryDate      time.Time `json:"expiry_date"`
	DaysUntilExpiry int       `json:"days_until_expiry"`
	Status          string    `json:"status"` // expired | critical | warning | ok
}

// Urgencias de reposición, de mayor a menor.
const (
	UrgencyUrgent = "urgent"
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// RestockProductDTO identificación del producto sugerido.
type RestockProductDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CurrentQuantity int64  `json:"current_quantity"`
	Category        string `json:"category,omitempty"`
}

// RestockAnalyticsDTO métricas de velocidad de venta (ventana de 90 días).
type RestockAnalyticsDTO struct {
	AverageDailySales    decimal.Decimal `json:"average_daily_sales"`
	TotalSoldLast90Days  int64           `json:"total_sold_last_90_days"`
	DaysOfStockRemaining int64           `json:"days_of_stock_remaining"`
}

// RestockOrderDTO recomendación de pedido (objetivo: 60 días de stock).
type RestockOrderDTO struct {
	RecommendedOrderQuantity int64           `json:"recommended_order_quantity"`
	Urgency                  string          `json:"urgency"`
	EstimatedCost            decimal.Decimal `json:"estimated_cost"`
}

// RestockSuggestionDTO sugerencia de reposición para un producto en riesgo.
type RestockSuggestionDTO struct {
	Product    RestockProductDTO   `json:"product"`
	Analytics  RestockAnalyticsDTO `json:"analytics"`
	Suggestion RestockOrderDTO     `json:"suggestion"`
}
