package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

const defaultLocation = "Main Storage"

// ProductUseCase casos de uso CRUD para productos. Quantity solo se modifica
// vía movimientos de stock una vez creado el producto.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	auditor      *audit.Recorder
}

// NewProductUseCase construye el caso de uso. auditor puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, auditor *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, auditor: auditor}
}

// Create crea un producto. La categoría debe existir; el umbral de stock bajo
// por defecto es 10 y la ubicación "Main Storage".
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.CostPrice.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	threshold := int64(entity.DefaultLowStockThreshold)
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		threshold = *in.LowStockThreshold
	}
	location := in.Location
	if location == "" {
		location = defaultLocation
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		Supplier:          in.Supplier,
		SKU:               in.SKU,
		Barcode:           in.Barcode,
		Location:          location,
		CostPrice:         in.CostPrice,
		Price:             in.Price,
		Quantity:          in.Quantity,
		LowStockThreshold: threshold,
		HasExpiry:         in.HasExpiry,
		ExpiryDate:        in.ExpiryDate,
		CreatedBy:         userID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}

	uc.record(ctx, userID, entity.ActionCreate, product.ID,
		fmt.Sprintf("Producto %q creado", product.Name))
	resp := toProductResponse(product, now)
	return &resp, nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product, time.Now())
	return &resp, nil
}

// Update actualiza campos del producto. No permite modificar Quantity
// (se maneja vía movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.HasExpiry != nil {
		product.HasExpiry = *in.HasExpiry
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	if in.Discontinued != nil {
		product.Discontinued = *in.Discontinued
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}

	uc.record(ctx, userID, entity.ActionUpdate, product.ID,
		fmt.Sprintf("Producto %q actualizado", product.Name))
	resp := toProductResponse(product, product.UpdatedAt)
	return &resp, nil
}

// List lista productos según filtro.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p, now))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete borra un producto. Sus movimientos históricos quedan como
// referencias huérfanas (comportamiento aceptado).
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.record(ctx, userID, entity.ActionDelete, id,
		fmt.Sprintf("Producto %q eliminado", product.Name))
	return nil
}

func (uc *ProductUseCase) record(ctx context.Context, userID, action, entityID, description string) {
	if uc.auditor == nil {
		return
	}
	uc.auditor.Record(ctx, audit.Entry{
		UserID:      userID,
		Action:      action,
		Entity:      entity.EntityProduct,
		EntityID:    entityID,
		Description: description,
	})
}

// toProductResponse arma la representación con derivados.
func toProductResponse(p *entity.Product, now time.Time) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		CategoryID:        p.CategoryID,
		Supplier:          p.Supplier,
		SKU:               p.SKU,
		Barcode:           p.Barcode,
		Location:          p.Location,
		CostPrice:         p.CostPrice,
		Price:             p.Price,
		Quantity:          p.Quantity,
		LowStockThreshold: p.LowStockThreshold,
		HasExpiry:         p.HasExpiry,
		ExpiryDate:        p.ExpiryDate,
		Discontinued:      p.Discontinued,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		StockValue:        p.StockValue(),
		ProfitPerUnit:     p.ProfitPerUnit(),
		TotalProfit:       p.TotalProfit(),
		IsLowStock:        p.IsLowStock(),
		ExpiryStatus:      p.ExpiryStatus(now),
	}
}
