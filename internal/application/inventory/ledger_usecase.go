// Package inventory contiene el libro de movimientos de stock: la aplicación
// validada de un movimiento sobre la cantidad de un producto, con snapshot
// inmutable antes/después, y las operaciones masivas sobre productos.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// LedgerUseCase aplica movimientos de stock de forma transaccional: bloquea la
// fila del producto (SELECT FOR UPDATE), valida la regla del tipo y persiste
// movimiento + nueva cantidad con Commit/Rollback.
type LedgerUseCase struct {
	txRunner      TxRunner
	movementRepo  repository.StockMovementRepository
	analyticsRepo repository.AnalyticsRepository
	auditor       AuditRecorder
	alerts        StockAlertNotifier
}

// NewLedgerUseCase construye el caso de uso. auditor y alerts pueden ser nil
// (sin bitácora / sin notificaciones).
func NewLedgerUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	analyticsRepo repository.AnalyticsRepository,
	auditor AuditRecorder,
	alerts StockAlertNotifier,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:      txRunner,
		movementRepo:  movementRepo,
		analyticsRepo: analyticsRepo,
		auditor:       auditor,
		alerts:        alerts,
	}
}

// ApplyMovementInput entrada para aplicar un movimiento.
// Quantity admite signo; el libro toma su valor absoluto.
type ApplyMovementInput struct {
	ProductID   string
	Type        string
	Quantity    int64
	Reference   string
	Notes       string
	PerformedBy string
}

// MovementResult movimiento persistido + resumen del producto actualizado.
type MovementResult struct {
	Movement    *entity.StockMovement
	ProductID   string
	ProductName string
	NewQuantity int64
}

// ApplyMovement valida y aplica un movimiento contra la cantidad actual del
// producto. Regla por tipo (exacta, sin desviación):
//
//	sale, damage      → prev - |q|
//	purchase, return  → prev + |q|
//	adjustment        → |q| (fija el valor absoluto, incluido 0)
//	transfer          → rechazado aquí; usar Transfer (operación dedicada)
//
// Si la cantidad resultante fuera negativa devuelve ErrInsufficientStock sin
// persistir nada. Movimiento y actualización del producto van en una sola
// transacción con la fila bloqueada.
func (uc *LedgerUseCase) ApplyMovement(ctx context.Context, input ApplyMovementInput) (*MovementResult, error) {
	if input.ProductID == "" || input.PerformedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMovementType(input.Type) || input.Type == entity.MovementTypeTransfer {
		return nil, domain.ErrInvalidInput
	}
	q := input.Quantity
	if q < 0 {
		q = -q
	}

	var (
		result       *MovementResult
		movedProduct *entity.Product
		prevQuantity int64
	)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		prev := product.Quantity
		var newQty int64
		switch input.Type {
		case entity.MovementTypeSale, entity.MovementTypeDamage:
			newQty = prev - q
		case entity.MovementTypePurchase, entity.MovementTypeReturn:
			newQty = prev + q
		case entity.MovementTypeAdjustment:
			newQty = q
		}
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		movement := &entity.StockMovement{
			ID:               uuid.New().String(),
			ProductID:        product.ID,
			Type:             input.Type,
			Quantity:         q,
			PreviousQuantity: prev,
			NewQuantity:      newQty,
			UnitPrice:        product.Price,
			TotalValue:       product.Price.Mul(decimal.NewFromInt(q)),
			Reference:        input.Reference,
			Notes:            input.Notes,
			PerformedBy:      input.PerformedBy,
			CreatedAt:        now,
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(product.ID, newQty, now); err != nil {
			return err
		}

		product.Quantity = newQty
		prevQuantity = prev
		movedProduct = product
		result = &MovementResult{
			Movement:    movement,
			ProductID:   product.ID,
			ProductName: product.Name,
			NewQuantity: newQty,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.auditor != nil {
		uc.auditor.Record(ctx, audit.Entry{
			UserID:      input.PerformedBy,
			Action:      entity.ActionCreate,
			Entity:      entity.EntityStockMovement,
			EntityID:    result.Movement.ID,
			Description: fmt.Sprintf("Movimiento %s de %d uds sobre %q", input.Type, q, result.ProductName),
			Metadata: map[string]any{
				"product_id":   result.ProductID,
				"type":         input.Type,
				"quantity":     q,
				"new_quantity": result.NewQuantity,
			},
		})
	}
	if uc.alerts != nil {
		uc.alerts.StockChanged(ctx, movedProduct, prevQuantity)
	}
	return result, nil
}

// TransferInput entrada para un traslado entre dos productos.
type TransferInput struct {
	FromProductID string
	ToProductID   string
	Quantity      int64
	Reference     string
	Notes         string
	PerformedBy   string
}

// TransferResult los dos movimientos generados por el traslado.
type TransferResult struct {
	Out *entity.StockMovement
	In  *entity.StockMovement
}

// Transfer resta Quantity al producto origen y la suma al destino en una sola
// transacción, generando dos movimientos type=transfer con la misma referencia.
// Si el origen no alcanza devuelve ErrInsufficientStock sin tocar nada.
func (uc *LedgerUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.FromProductID == "" || input.ToProductID == "" || input.PerformedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.FromProductID == input.ToProductID || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	reference := input.Reference
	if reference == "" {
		reference = "TRF-" + uuid.New().String()
	}

	var result *TransferResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquear siempre en el mismo orden para evitar interbloqueos
		// entre traslados cruzados concurrentes.
		firstID, secondID := input.FromProductID, input.ToProductID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}
		first, err := productRepo.GetForUpdate(firstID)
		if err != nil {
			return err
		}
		second, err := productRepo.GetForUpdate(secondID)
		if err != nil {
			return err
		}
		if first == nil || second == nil {
			return domain.ErrNotFound
		}

		from, to := first, second
		if from.ID != input.FromProductID {
			from, to = second, first
		}
		if from.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		outMov := &entity.StockMovement{
			ID:               uuid.New().String(),
			ProductID:        from.ID,
			Type:             entity.MovementTypeTransfer,
			Quantity:         input.Quantity,
			PreviousQuantity: from.Quantity,
			NewQuantity:      from.Quantity - input.Quantity,
			UnitPrice:        from.Price,
			TotalValue:       from.Price.Mul(decimal.NewFromInt(input.Quantity)),
			Reference:        reference,
			Notes:            input.Notes,
			PerformedBy:      input.PerformedBy,
			CreatedAt:        now,
		}
		inMov := &entity.StockMovement{
			ID:               uuid.New().String(),
			ProductID:        to.ID,
			Type:             entity.MovementTypeTransfer,
			Quantity:         input.Quantity,
			PreviousQuantity: to.Quantity,
			NewQuantity:      to.Quantity + input.Quantity,
			UnitPrice:        to.Price,
			TotalValue:       to.Price.Mul(decimal.NewFromInt(input.Quantity)),
			Reference:        reference,
			Notes:            input.Notes,
			PerformedBy:      input.PerformedBy,
			CreatedAt:        now,
		}
		if err := movRepo.Create(outMov); err != nil {
			return err
		}
		if err := movRepo.Create(inMov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(from.ID, outMov.NewQuantity, now); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(to.ID, inMov.NewQuantity, now); err != nil {
			return err
		}
		result = &TransferResult{Out: outMov, In: inMov}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.auditor != nil {
		uc.auditor.Record(ctx, audit.Entry{
			UserID:      input.PerformedBy,
			Action:      entity.ActionCreate,
			Entity:      entity.EntityStockMovement,
			EntityID:    result.Out.ID,
			Description: fmt.Sprintf("Traslado de %d uds entre productos", input.Quantity),
			Metadata: map[string]any{
				"from_product_id": input.FromProductID,
				"to_product_id":   input.ToProductID,
				"quantity":        input.Quantity,
				"reference":       reference,
			},
		})
	}
	return result, nil
}

// ListMovements lista movimientos según filtro, más recientes primero.
func (uc *LedgerUseCase) ListMovements(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Type != "" && !entity.ValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	return uc.movementRepo.List(filter)
}

// ListByProduct historial completo de movimientos de un producto.
func (uc *LedgerUseCase) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.movementRepo.ListByProduct(productID)
}

// Summary agregados por tipo de movimiento en el rango dado (nil = sin cota).
func (uc *LedgerUseCase) Summary(ctx context.Context, from, to *time.Time) (*dto.MovementSummaryResponse, error) {
	rows, err := uc.analyticsRepo.GetMovementSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.MovementSummaryResponse{
		TotalValue: decimal.Zero,
		ByType:     make([]dto.MovementTypeSummaryDTO, 0, len(rows)),
	}
	for _, r := range rows {
		resp.TotalMovements += r.Count
		resp.TotalValue = resp.TotalValue.Add(r.TotalValue)
		resp.ByType = append(resp.ByType, dto.MovementTypeSummaryDTO{
			Type:          r.Type,
			Count:         r.Count,
			TotalQuantity: r.TotalQuantity,
			TotalValue:    r.TotalValue,
		})
	}
	return resp, nil
}
