package inventory_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los casos de uso de inventario. Implementan los
// puertos de repository sobre mapas, sin transaccionalidad real: el
// memoryTxRunner ejecuta la función con los mismos repos y descarta los
// cambios solo cuando fn devuelve error sobre copias (ver Run).
// ──────────────────────────────────────────────────────────────────────────────

type memoryProductRepo struct {
	products map[string]*entity.Product
	// failUpdatePriceFor simula un fallo de escritura a mitad de un lote.
	failUpdatePriceFor string
}

func newMemoryProductRepo(products ...*entity.Product) *memoryProductRepo {
	m := &memoryProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		m.products[p.ID] = &cp
	}
	return m
}

func (m *memoryProductRepo) Create(p *entity.Product) error {
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memoryProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memoryProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return m.GetByID(id)
}

func (m *memoryProductRepo) Update(p *entity.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.products[p.ID] = &cp
	return nil
}

func (m *memoryProductRepo) UpdateQuantity(productID string, quantity int64, updatedAt time.Time) error {
	p, ok := m.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.UpdatedAt = updatedAt
	return nil
}

func (m *memoryProductRepo) UpdatePrice(productID string, price decimal.Decimal, updatedAt time.Time) error {
	if productID == m.failUpdatePriceFor {
		return fmt.Errorf("fallo simulado al actualizar %s", productID)
	}
	p, ok := m.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price = price
	p.UpdatedAt = updatedAt
	return nil
}

func (m *memoryProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryProductRepo) ListWithExpiry() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		if p.HasExpiry && p.ExpiryDate != nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		if p.Quantity < p.LowStockThreshold {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

func (m *memoryProductRepo) CountByCategory(categoryID string) (int64, error) {
	var n int64
	for _, p := range m.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *memoryProductRepo) SetCategoryByIDs(ids []string, categoryID string) (int64, error) {
	var n int64
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			p.CategoryID = categoryID
			n++
		}
	}
	return n, nil
}

func (m *memoryProductRepo) UpdateByIDs(ids []string, updates repository.ProductBulkUpdate) (int64, error) {
	var n int64
	for _, id := range ids {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		if updates.Supplier != nil {
			p.Supplier = *updates.Supplier
		}
		if updates.Location != nil {
			p.Location = *updates.Location
		}
		if updates.Discontinued != nil {
			p.Discontinued = *updates.Discontinued
		}
		if updates.LowStockThreshold != nil {
			p.LowStockThreshold = *updates.LowStockThreshold
		}
		n++
	}
	return n, nil
}

func (m *memoryProductRepo) DeleteByIDs(ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := m.products[id]; ok {
			delete(m.products, id)
			n++
		}
	}
	return n, nil
}

func (m *memoryProductRepo) Delete(id string) error {
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

type memoryMovementRepo struct {
	movements []*entity.StockMovement
}

func (m *memoryMovementRepo) Create(mv *entity.StockMovement) error {
	cp := *mv
	m.movements = append(m.movements, &cp)
	return nil
}

func (m *memoryMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, mv := range m.movements {
		if mv.ID == id {
			cp := *mv
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, mv := range m.movements {
		if filter.ProductID != "" && mv.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && mv.Type != filter.Type {
			continue
		}
		cp := *mv
		out = append(out, &cp)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memoryMovementRepo) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	return m.List(repository.MovementFilter{ProductID: productID})
}

type memoryCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemoryCategoryRepo(categories ...*entity.Category) *memoryCategoryRepo {
	m := &memoryCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		cp := *c
		m.categories[c.ID] = &cp
	}
	return m
}

func (m *memoryCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *memoryCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memoryCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryCategoryRepo) Update(c *entity.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	m.categories[c.ID] = &cp
	return nil
}

func (m *memoryCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryCategoryRepo) Delete(id string) error {
	delete(m.categories, id)
	return nil
}

// memoryTxRunner ejecuta fn sobre snapshots de los repos y solo vuelca los
// cambios al estado real si fn termina sin error (simula Commit/Rollback).
type memoryTxRunner struct {
	productRepo  *memoryProductRepo
	movementRepo *memoryMovementRepo
}

func (r *memoryTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	txProducts := newMemoryProductRepo()
	for _, p := range r.productRepo.products {
		cp := *p
		txProducts.products[p.ID] = &cp
	}
	txMovs := &memoryMovementRepo{movements: append([]*entity.StockMovement(nil), r.movementRepo.movements...)}

	if err := fn(txMovs, txProducts); err != nil {
		return err
	}
	r.productRepo.products = txProducts.products
	r.movementRepo.movements = txMovs.movements
	return nil
}

// memoryAuditor acumula las entradas de bitácora registradas.
type memoryAuditor struct {
	entries []audit.Entry
}

func (a *memoryAuditor) Record(_ context.Context, e audit.Entry) {
	a.entries = append(a.entries, e)
}

// memoryCSV renderiza un CSV mínimo; los tests solo verifican el cableado.
type memoryCSV struct {
	lastProducts []*entity.Product
	lastNames    map[string]string
}

func (c *memoryCSV) RenderProducts(products []*entity.Product, categoryNames map[string]string) ([]byte, error) {
	c.lastProducts = products
	c.lastNames = categoryNames
	return []byte(fmt.Sprintf("csv:%d", len(products))), nil
}
