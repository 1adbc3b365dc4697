package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
)

// ProductFilter criterios de listado de productos.
type ProductFilter struct {
	CategoryID string
	LowStock   bool   // quantity < low_stock_threshold (comparación entre columnas)
	Search     string // búsqueda parcial por nombre
	Limit      int
	Offset     int
}

// ProductBulkUpdate campos opcionales para actualización masiva; nil = sin cambio.
type ProductBulkUpdate struct {
	Supplier          *string
	Location          *string
	Discontinued      *bool
	LowStockThreshold *int64
}

// IsEmpty indica si no hay ningún campo a actualizar.
func (u ProductBulkUpdate) IsEmpty() bool {
	return u.Supplier == nil && u.Location == nil && u.Discontinued == nil && u.LowStockThreshold == nil
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido sobre repositorios atados a una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int64, updatedAt time.Time) error
	UpdatePrice(productID string, price decimal.Decimal, updatedAt time.Time) error
	List(filter ProductFilter) ([]*entity.Product, error)
	ListByIDs(ids []string) ([]*entity.Product, error)
	// ListWithExpiry productos con HasExpiry=true y ExpiryDate definida.
	ListWithExpiry() ([]*entity.Product, error)
	// ListLowStock productos con quantity < low_stock_threshold, cantidad ascendente.
	ListLowStock() ([]*entity.Product, error)
	CountByCategory(categoryID string) (int64, error)
	SetCategoryByIDs(ids []string, categoryID string) (int64, error)
	UpdateByIDs(ids []string, updates ProductBulkUpdate) (int64, error)
	DeleteByIDs(ids []string) (int64, error)
	Delete(id string) error
}
