package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeSale       = "sale"       // venta: resta
	MovementTypePurchase   = "purchase"   // compra: suma
	MovementTypeReturn     = "return"     // devolución: suma
	MovementTypeAdjustment = "adjustment" // ajuste: fija la cantidad en valor absoluto
	MovementTypeDamage     = "damage"     // merma/daño: resta
	MovementTypeTransfer   = "transfer"   // traslado entre productos (operación dedicada)
)

// ValidMovementType indica si type pertenece al conjunto enumerado.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeSale, MovementTypePurchase, MovementTypeReturn,
		MovementTypeAdjustment, MovementTypeDamage, MovementTypeTransfer:
		return true
	}
	return false
}

// StockMovement registro inmutable de un cambio de cantidad de un producto,
// con snapshot antes/después. Append-only: nunca se actualiza ni se borra.
type StockMovement struct {
	ID               string
	ProductID        string
	Type             string
	Quantity         int64           // magnitud, siempre >= 0 tal como se persiste
	PreviousQuantity int64
	NewQuantity      int64           // invariante: >= 0
	UnitPrice        decimal.Decimal // snapshot del precio de venta al momento del movimiento
	TotalValue       decimal.Decimal // UnitPrice * Quantity
	Reference        string
	Notes            string
	PerformedBy      string // UserID
	CreatedAt        time.Time
}
