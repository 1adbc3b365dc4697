// Package analytics contiene los casos de uso de lectura: dashboard,
// valoración de inventario, alertas de vencimiento y sugerencias de
// reposición. Ningún caso de uso de este paquete muta datos.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

const (
	dashboardTopProducts  = 10
	recentActivityWindowD = 30
)

// DashboardUseCase genera el resumen del inventario para el dashboard.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	analyticsRepo repository.AnalyticsRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		analyticsRepo: analyticsRepo,
	}
}

// GetDashboard construye el DashboardDTO.
//
// Tres lecturas en paralelo:
//  1. Productos completos        → totales, alertas, top-10
//  2. Categorías                 → desglose por categoría
//  3. Movimientos últimos 30d    → actividad reciente por tipo
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -recentActivityWindowD)

	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type categoriesResult struct {
		categories []*entity.Category
		err        error
	}
	type summaryResult struct {
		rows []repository.MovementTypeSummary
		err  error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)
	summaryCh := make(chan summaryResult, 1)

	go func() {
		p, err := uc.productRepo.List(repository.ProductFilter{})
		productsCh <- productsResult{p, err}
	}()
	go func() {
		c, err := uc.categoryRepo.List()
		categoriesCh <- categoriesResult{c, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetMovementSummary(ctx, &since, nil)
		summaryCh <- summaryResult{rows, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh
	summary := <-summaryCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}
	if summary.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", summary.err)
	}

	d := &dto.DashboardDTO{
		Inventory:         inventoryTotals(products.products),
		Alerts:            alertCounts(products.products, now),
		CategoryBreakdown: categoryBreakdown(products.products, categories.categories),
		TopProducts:       topProductsByValue(products.products, categories.categories),
	}

	d.RecentActivity.ByType = make([]dto.MovementTypeSummaryDTO, 0, len(summary.rows))
	for _, r := range summary.rows {
		d.RecentActivity.TotalMovements += r.Count
		d.RecentActivity.ByType = append(d.RecentActivity.ByType, dto.MovementTypeSummaryDTO{
			Type:          r.Type,
			Count:         r.Count,
			TotalQuantity: r.TotalQuantity,
			TotalValue:    r.TotalValue,
		})
	}
	return d, nil
}

// inventoryTotals totales de inventario a precio de venta y costo.
func inventoryTotals(products []*entity.Product) dto.InventoryTotalsDTO {
	t := dto.InventoryTotalsDTO{
		TotalProducts: int64(len(products)),
		TotalValue:    decimal.Zero,
		TotalCost:     decimal.Zero,
	}
	for _, p := range products {
		qty := decimal.NewFromInt(p.Quantity)
		t.TotalQuantity += p.Quantity
		t.TotalValue = t.TotalValue.Add(p.Price.Mul(qty))
		t.TotalCost = t.TotalCost.Add(p.CostPrice.Mul(qty))
	}
	t.TotalProfit = t.TotalValue.Sub(t.TotalCost)
	t.ProfitMargin = profitMargin(t.TotalProfit, t.TotalValue)
	return t
}

// profitMargin margen % = profit/value*100, 0 si value es 0 (nunca NaN).
func profitMargin(profit, value decimal.Decimal) decimal.Decimal {
	if value.IsZero() {
		return decimal.Zero
	}
	return profit.Div(value).Mul(decimal.NewFromInt(100)).Round(2)
}

func alertCounts(products []*entity.Product, now time.Time) dto.AlertCountsDTO {
	var a dto.AlertCountsDTO
	for _, p := range products {
		if p.IsLowStock() {
			a.LowStock++
		}
		if p.Quantity == 0 {
			a.OutOfStock++
		}
		if !p.HasExpiry || p.ExpiryDate == nil {
			continue
		}
		days := p.DaysUntilExpiry(now)
		switch {
		case days < 0:
			a.Expired++
		case days > 0 && days <= 30:
			a.ExpiringSoon++
		}
	}
	return a
}

// categoryBreakdown agrupa por categoría y descarta las vacías.
func categoryBreakdown(products []*entity.Product, categories []*entity.Category) []dto.CategoryBreakdownDTO {
	out := make([]dto.CategoryBreakdownDTO, 0, len(categories))
	for _, c := range categories {
		row := dto.CategoryBreakdownDTO{Name: c.Name, Value: decimal.Zero}
		for _, p := range products {
			if p.CategoryID != c.ID {
				continue
			}
			row.ProductCount++
			row.Quantity += p.Quantity
			row.Value = row.Value.Add(p.StockValue())
		}
		if row.ProductCount > 0 {
			out = append(out, row)
		}
	}
	return out
}

// topProductsByValue top-10 por valor de stock descendente.
func topProductsByValue(products []*entity.Product, categories []*entity.Category) []dto.TopProductDTO {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StockValue().GreaterThan(sorted[j].StockValue())
	})
	if len(sorted) > dashboardTopProducts {
		sorted = sorted[:dashboardTopProducts]
	}
	out := make([]dto.TopProductDTO, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, dto.TopProductDTO{
			ID:       p.ID,
			Name:     p.Name,
			Category: names[p.CategoryID],
			Quantity: p.Quantity,
			Value:    p.StockValue(),
		})
	}
	return out
}
