package entity

import (
	"encoding/json"
	"time"
)

// Acciones registrables en la bitácora de actividad.
const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionLogin      = "login"
	ActionLogout     = "logout"
	ActionExport     = "export"
	ActionImport     = "import"
	ActionBulkAction = "bulk-action"
)

// Entidades sobre las que se registra actividad.
const (
	EntityProduct       = "product"
	EntityCategory      = "category"
	EntitySupplier      = "supplier"
	EntityWarehouse     = "warehouse"
	EntityUser          = "user"
	EntityStockMovement = "stock-movement"
	EntitySystem        = "system"
)

// ActivityLog entrada append-only de la bitácora: una por operación lógica
// (no por fila afectada en operaciones masivas).
type ActivityLog struct {
	ID          string
	UserID      string
	Action      string
	Entity      string
	EntityID    string // vacío para operaciones sin entidad concreta
	Description string
	Metadata    json.RawMessage
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}
