package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, category_id, supplier, sku, barcode, location,
	cost_price, price, quantity, low_stock_threshold, has_expiry, expiry_date,
	discontinued, created_by, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Supplier, &p.SKU, &p.Barcode, &p.Location,
		&p.CostPrice, &p.Price, &p.Quantity, &p.LowStockThreshold, &p.HasExpiry, &p.ExpiryDate,
		&p.Discontinued, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID, product.Supplier,
		product.SKU, product.Barcode, product.Location, product.CostPrice, product.Price,
		product.Quantity, product.LowStockThreshold, product.HasExpiry, product.ExpiryDate,
		product.Discontinued, product.CreatedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. Quantity se maneja vía UpdateQuantity.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, category_id = $4, supplier = $5,
			sku = $6, barcode = $7, location = $8, cost_price = $9, price = $10,
			low_stock_threshold = $11, has_expiry = $12, expiry_date = $13,
			discontinued = $14, updated_at = $15
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID, product.Supplier,
		product.SKU, product.Barcode, product.Location, product.CostPrice, product.Price,
		product.LowStockThreshold, product.HasExpiry, product.ExpiryDate,
		product.Discontinued, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad resultante de un movimiento de stock.
func (r *ProductRepo) UpdateQuantity(productID string, quantity int64, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = $3 WHERE id = $1`,
		productID, quantity, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrice fija el precio de venta (usado por ajustes masivos).
func (r *ProductRepo) UpdatePrice(productID string, price decimal.Decimal, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET price = $2, updated_at = $3 WHERE id = $1`,
		productID, price, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos según filtro, más recientes primero.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	i := 1
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", i)
		args = append(args, filter.CategoryID)
		i++
	}
	if filter.LowStock {
		query += " AND quantity < low_stock_threshold"
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", i)
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", i, i+1)
		args = append(args, filter.Limit, filter.Offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// ListByIDs obtiene los productos cuyo ID esté en ids (los inexistentes se omiten).
func (r *ProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list products by ids: %w", err)
	}
	return collectProducts(rows)
}

// ListWithExpiry productos con control de vencimiento y fecha definida.
func (r *ProductRepo) ListWithExpiry() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE has_expiry = true AND expiry_date IS NOT NULL ORDER BY expiry_date ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products with expiry: %w", err)
	}
	return collectProducts(rows)
}

// ListLowStock productos bajo su umbral, cantidad ascendente.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE quantity < low_stock_threshold ORDER BY quantity ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock products: %w", err)
	}
	return collectProducts(rows)
}

// CountByCategory cuenta productos que referencian la categoría.
func (r *ProductRepo) CountByCategory(categoryID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// SetCategoryByIDs reasigna la categoría de los productos dados; devuelve filas afectadas.
func (r *ProductRepo) SetCategoryByIDs(ids []string, categoryID string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET category_id = $2, updated_at = now() WHERE id = ANY($1)`,
		ids, categoryID,
	)
	if err != nil {
		return 0, fmt.Errorf("set category by ids: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// UpdateByIDs aplica campos opcionales a los productos dados; devuelve filas afectadas.
func (r *ProductRepo) UpdateByIDs(ids []string, updates repository.ProductBulkUpdate) (int64, error) {
	if len(ids) == 0 || updates.IsEmpty() {
		return 0, nil
	}
	query := `UPDATE products SET updated_at = now()`
	args := []any{ids}
	i := 2
	if updates.Supplier != nil {
		query += fmt.Sprintf(", supplier = $%d", i)
		args = append(args, *updates.Supplier)
		i++
	}
	if updates.Location != nil {
		query += fmt.Sprintf(", location = $%d", i)
		args = append(args, *updates.Location)
		i++
	}
	if updates.Discontinued != nil {
		query += fmt.Sprintf(", discontinued = $%d", i)
		args = append(args, *updates.Discontinued)
		i++
	}
	if updates.LowStockThreshold != nil {
		query += fmt.Sprintf(", low_stock_threshold = $%d", i)
		args = append(args, *updates.LowStockThreshold)
	}
	query += ` WHERE id = ANY($1)`
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk update products: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByIDs borra los productos dados; devuelve filas afectadas.
func (r *ProductRepo) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk delete products: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
