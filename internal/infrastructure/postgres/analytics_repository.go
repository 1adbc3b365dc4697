package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre el libro de movimientos.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesByProduct suma unidades vendidas por producto desde `since`.
// Quantity se almacena como magnitud; ABS protege contra datos heredados.
func (r *AnalyticsRepo) GetSalesByProduct(ctx context.Context, since time.Time) ([]repository.ProductSalesResult, error) {
	query := `
		SELECT product_id, COALESCE(SUM(ABS(quantity)), 0) AS units_sold
		FROM stock_movements
		WHERE type = $1 AND created_at >= $2
		GROUP BY product_id`
	rows, err := r.q.Query(ctx, query, entity.MovementTypeSale, since)
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()
	var results []repository.ProductSalesResult
	for rows.Next() {
		var res repository.ProductSalesResult
		if err := rows.Scan(&res.ProductID, &res.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan sales result: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// GetMovementSummary agrupa movimientos por tipo en el rango dado.
func (r *AnalyticsRepo) GetMovementSummary(ctx context.Context, from, to *time.Time) ([]repository.MovementTypeSummary, error) {
	query := `
		SELECT type, COUNT(*), COALESCE(SUM(ABS(quantity)), 0), COALESCE(SUM(total_value), 0)
		FROM stock_movements WHERE 1=1`
	args := []any{}
	i := 1
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", i)
		args = append(args, *from)
		i++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", i)
		args = append(args, *to)
	}
	query += " GROUP BY type ORDER BY type"
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movement summary: %w", err)
	}
	defer rows.Close()
	var results []repository.MovementTypeSummary
	for rows.Next() {
		var s repository.MovementTypeSummary
		if err := rows.Scan(&s.Type, &s.Count, &s.TotalQuantity, &s.TotalValue); err != nil {
			return nil, fmt.Errorf("scan movement summary: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
