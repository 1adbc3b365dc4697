package inventory

import (
	"context"

	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el alta del
// movimiento y la actualización de cantidad del producto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// AuditRecorder registra una entrada de bitácora por operación lógica.
// Best-effort: nunca bloquea ni hace fallar la operación de negocio.
type AuditRecorder interface {
	Record(ctx context.Context, e audit.Entry)
}

// StockAlertNotifier recibe el producto tras un movimiento para generar
// notificaciones de stock bajo / agotado a los usuarios suscritos.
type StockAlertNotifier interface {
	StockChanged(ctx context.Context, product *entity.Product, previousQuantity int64)
}

// ProductCSVRenderer renderiza productos como CSV (colaborador de exportación).
type ProductCSVRenderer interface {
	RenderProducts(products []*entity.Product, categoryNames map[string]string) ([]byte, error)
}
