package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	CategoryID        string           `json:"category_id"`
	Supplier          string           `json:"supplier,omitempty"`
	SKU               string           `json:"sku,omitempty"`
	Barcode           string           `json:"barcode,omitempty"`
	Location          string           `json:"location,omitempty"`
	CostPrice         decimal.Decimal  `json:"cost_price"`
	Price             decimal.Decimal  `json:"price"`
	Quantity          int64            `json:"quantity"`
	LowStockThreshold *int64           `json:"low_stock_threshold,omitempty"`
	HasExpiry         bool             `json:"has_expiry,omitempty"`
	ExpiryDate        *time.Time       `json:"expiry_date,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil = sin cambio.
// Quantity no se actualiza por aquí: solo vía movimientos de stock.
type UpdateProductRequest struct {
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	CategoryID        *string          `json:"category_id,omitempty"`
	Supplier          *string          `json:"supplier,omitempty"`
	SKU               *string          `json:"sku,omitempty"`
	Barcode           *string          `json:"barcode,omitempty"`
	Location          *string          `json:"location,omitempty"`
	CostPrice         *decimal.Decimal `json:"cost_price,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	LowStockThreshold *int64           `json:"low_stock_threshold,omitempty"`
	HasExpiry         *bool            `json:"has_expiry,omitempty"`
	ExpiryDate        *time.Time       `json:"expiry_date,omitempty"`
	Discontinued      *bool            `json:"discontinued,omitempty"`
}

// ProductResponse representación de un producto con sus valores derivados.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	CategoryID        string          `json:"category_id"`
	Supplier          string          `json:"supplier,omitempty"`
	SKU               string          `json:"sku,omitempty"`
	Barcode           string          `json:"barcode,omitempty"`
	Location          string          `json:"location,omitempty"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	Price             decimal.Decimal `json:"price"`
	Quantity          int64           `json:"quantity"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	HasExpiry         bool            `json:"has_expiry"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	Discontinued      bool            `json:"discontinued"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	// Derivados (no almacenados)
	StockValue    decimal.Decimal `json:"stock_value"`
	ProfitPerUnit decimal.Decimal `json:"profit_per_unit"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	IsLowStock    bool            `json:"is_low_stock"`
	ExpiryStatus  string          `json:"expiry_status"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
