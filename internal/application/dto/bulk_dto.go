package dto

import "github.com/shopspring/decimal"

// Modos de ajuste masivo de precios.
const (
	AdjustPercentage = "percentage"
	AdjustFixed      = "fixed"
)

// BulkPriceAdjustRequest body para POST /api/bulk/products/adjust-price.
type BulkPriceAdjustRequest struct {
	ProductIDs     []string        `json:"product_ids"`
	AdjustmentType string          `json:"adjustment_type"` // percentage | fixed
	Value          decimal.Decimal `json:"value"`
}

// BulkCategoryChangeRequest body para POST /api/bulk/products/change-category.
type BulkCategoryChangeRequest struct {
	ProductIDs []string `json:"product_ids"`
	CategoryID string   `json:"category_id"`
}

// BulkUpdateFields campos actualizables en masa; nil = sin cambio.
type BulkUpdateFields struct {
	Supplier          *string `json:"supplier,omitempty"`
	Location          *string `json:"location,omitempty"`
	Discontinued      *bool   `json:"discontinued,omitempty"`
	LowStockThreshold *int64  `json:"low_stock_threshold,omitempty"`
}

// BulkUpdateRequest body para POST /api/bulk/products/update.
type BulkUpdateRequest struct {
	ProductIDs []string         `json:"product_ids"`
	Updates    BulkUpdateFields `json:"updates"`
}

// BulkDeleteRequest body para POST /api/bulk/products/delete.
type BulkDeleteRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// BulkExportRequest body para POST /api/bulk/products/export-csv.
// ProductIDs vacío exporta todo el inventario.
type BulkExportRequest struct {
	ProductIDs []string `json:"product_ids,omitempty"`
}
