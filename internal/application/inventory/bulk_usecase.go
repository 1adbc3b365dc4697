package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// BulkUseCase operaciones masivas sobre productos. Deliberadamente NO
// atómicas: el ajuste de precios es una secuencia leer-calcular-escribir por
// producto y un fallo a mitad deja lo ya actualizado tal cual (sin rollback).
// Cada operación deja UNA entrada de bitácora, no una por fila.
type BulkUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	auditor      AuditRecorder
	csv          ProductCSVRenderer
}

// NewBulkUseCase construye el caso de uso.
func NewBulkUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	auditor AuditRecorder,
	csv ProductCSVRenderer,
) *BulkUseCase {
	return &BulkUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		auditor:      auditor,
		csv:          csv,
	}
}

// PriceAdjust ajusta el precio de cada producto referenciado:
// percentage → price × (1 + value/100); fixed → price + value.
// Resultados negativos se fijan en 0. Devuelve cuántos productos se actualizaron.
func (uc *BulkUseCase) PriceAdjust(ctx context.Context, userID string, in dto.BulkPriceAdjustRequest) (int64, error) {
	if len(in.ProductIDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	if in.AdjustmentType != dto.AdjustPercentage && in.AdjustmentType != dto.AdjustFixed {
		return 0, domain.ErrInvalidInput
	}

	products, err := uc.productRepo.ListByIDs(in.ProductIDs)
	if err != nil {
		return 0, err
	}

	var updated int64
	now := time.Now()
	for _, p := range products {
		var newPrice decimal.Decimal
		if in.AdjustmentType == dto.AdjustPercentage {
			newPrice = p.Price.Mul(decimal.NewFromInt(1).Add(in.Value.Div(oneHundred)))
		} else {
			newPrice = p.Price.Add(in.Value)
		}
		if newPrice.IsNegative() {
			newPrice = decimal.Zero
		}
		if err := uc.productRepo.UpdatePrice(p.ID, newPrice, now); err != nil {
			// Sin rollback: lo ya actualizado queda actualizado.
			return updated, err
		}
		updated++
	}

	uc.record(ctx, userID,
		fmt.Sprintf("Ajuste masivo de precios: %s %s sobre %d productos", in.AdjustmentType, in.Value.String(), updated),
		map[string]any{"product_ids": in.ProductIDs, "adjustment_type": in.AdjustmentType, "value": in.Value},
	)
	return updated, nil
}

// CategoryChange mueve los productos referenciados a otra categoría.
// La categoría destino debe existir (ErrNotFound si no).
func (uc *BulkUseCase) CategoryChange(ctx context.Context, userID string, in dto.BulkCategoryChangeRequest) (int64, error) {
	if len(in.ProductIDs) == 0 || in.CategoryID == "" {
		return 0, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return 0, err
	}
	if category == nil {
		return 0, domain.ErrNotFound
	}

	count, err := uc.productRepo.SetCategoryByIDs(in.ProductIDs, in.CategoryID)
	if err != nil {
		return 0, err
	}

	uc.record(ctx, userID,
		fmt.Sprintf("Movidos %d productos a la categoría %q", count, category.Name),
		map[string]any{"product_ids": in.ProductIDs, "category_id": in.CategoryID, "category_name": category.Name},
	)
	return count, nil
}

// Update aplica los campos indicados a todos los productos referenciados.
func (uc *BulkUseCase) Update(ctx context.Context, userID string, in dto.BulkUpdateRequest) (int64, error) {
	if len(in.ProductIDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	updates := repository.ProductBulkUpdate{
		Supplier:          in.Updates.Supplier,
		Location:          in.Updates.Location,
		Discontinued:      in.Updates.Discontinued,
		LowStockThreshold: in.Updates.LowStockThreshold,
	}
	if updates.IsEmpty() {
		return 0, domain.ErrInvalidInput
	}

	count, err := uc.productRepo.UpdateByIDs(in.ProductIDs, updates)
	if err != nil {
		return 0, err
	}

	uc.record(ctx, userID,
		fmt.Sprintf("Actualización masiva de %d productos", count),
		map[string]any{"product_ids": in.ProductIDs},
	)
	return count, nil
}

// Delete borra los productos referenciados. Los movimientos históricos de esos
// productos quedan como referencias huérfanas (comportamiento aceptado).
func (uc *BulkUseCase) Delete(ctx context.Context, userID string, in dto.BulkDeleteRequest) (int64, error) {
	if len(in.ProductIDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	count, err := uc.productRepo.DeleteByIDs(in.ProductIDs)
	if err != nil {
		return 0, err
	}

	uc.record(ctx, userID,
		fmt.Sprintf("Borrado masivo de %d productos", count),
		map[string]any{"product_ids": in.ProductIDs},
	)
	return count, nil
}

// ExportCSV exporta los productos indicados (todos si la lista viene vacía)
// con el layout fijo de 11 columnas del colaborador de exportación.
func (uc *BulkUseCase) ExportCSV(ctx context.Context, userID string, productIDs []string) ([]byte, error) {
	var (
		products []*entity.Product
		err      error
	)
	if len(productIDs) > 0 {
		products, err = uc.productRepo.ListByIDs(productIDs)
	} else {
		products, err = uc.productRepo.List(repository.ProductFilter{})
	}
	if err != nil {
		return nil, err
	}

	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	out, err := uc.csv.RenderProducts(products, names)
	if err != nil {
		return nil, err
	}

	if uc.auditor != nil {
		uc.auditor.Record(ctx, audit.Entry{
			UserID:      userID,
			Action:      entity.ActionExport,
			Entity:      entity.EntityProduct,
			Description: fmt.Sprintf("Exportados %d productos a CSV", len(products)),
		})
	}
	return out, nil
}

func (uc *BulkUseCase) record(ctx context.Context, userID, description string, metadata map[string]any) {
	if uc.auditor == nil {
		return
	}
	uc.auditor.Record(ctx, audit.Entry{
		UserID:      userID,
		Action:      entity.ActionBulkAction,
		Entity:      entity.EntityProduct,
		Description: description,
		Metadata:    metadata,
	})
}
