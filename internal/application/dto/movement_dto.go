package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyMovementRequest body para POST /api/movements.
// Quantity admite signo: el libro toma el valor absoluto antes de aplicar la
// regla del tipo.
type ApplyMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	Reference string `json:"reference,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// TransferRequest body para POST /api/movements/transfer.
type TransferRequest struct {
	FromProductID string `json:"from_product_id"`
	ToProductID   string `json:"to_product_id"`
	Quantity      int64  `json:"quantity"`
	Reference     string `json:"reference,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// MovementResponse un movimiento persistido.
type MovementResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Type             string          `json:"type"`
	Quantity         int64           `json:"quantity"`
	PreviousQuantity int64           `json:"previous_quantity"`
	NewQuantity      int64           `json:"new_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalValue       decimal.Decimal `json:"total_value"`
	Reference        string          `json:"reference,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	PerformedBy      string          `json:"performed_by"`
	CreatedAt        time.Time       `json:"created_at"`
}

// MovementProductResponse resumen del producto tras aplicar un movimiento.
type MovementProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NewQuantity int64  `json:"new_quantity"`
}

// MovementResultResponse respuesta de POST /api/movements.
type MovementResultResponse struct {
	Movement MovementResponse        `json:"movement"`
	Product  MovementProductResponse `json:"product"`
}

// TransferResultResponse respuesta de POST /api/movements/transfer:
// los dos movimientos (salida en origen, entrada en destino).
type TransferResultResponse struct {
	Out MovementResponse `json:"out"`
	In  MovementResponse `json:"in"`
}

// MovementTypeSummaryDTO agregado por tipo de movimiento.
type MovementTypeSummaryDTO struct {
	Type          string          `json:"type"`
	Count         int64           `json:"count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// MovementSummaryResponse respuesta de GET /api/movements/summary.
type MovementSummaryResponse struct {
	TotalMovements int64                    `json:"total_movements"`
	TotalValue     decimal.Decimal          `json:"total_value"`
	ByType         []MovementTypeSummaryDTO `json:"by_type"`
}
