package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

const (
	salesWindowDays    = 90  // ventana de historial de ventas
	supplyTargetDays   = 60  // objetivo de cobertura del pedido sugerido
	riskHorizonDays    = 30  // umbral de días de stock para sugerir
	noRiskSentinelDays = 999 // "sin riesgo": producto sin ventas en la ventana
)

// costPriceFallbackFactor estimación del costo cuando CostPrice es 0: 60% del precio.
var costPriceFallbackFactor = decimal.NewFromFloat(0.6)

// RestockUseCase motor de sugerencias de reposición basado en la velocidad de
// venta de los últimos 90 días.
type RestockUseCase struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewRestockUseCase construye el caso de uso.
func NewRestockUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	analyticsRepo repository.AnalyticsRepository,
) *RestockUseCase {
	return &RestockUseCase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		analyticsRepo: analyticsRepo,
	}
}

// Suggestions calcula, por producto:
//
//	averageDailySales    = unidades vendidas en 90d / 90
//	daysOfStockRemaining = quantity / averageDailySales (999 si no hay ventas)
//
// Sugiere si daysOfStockRemaining < 30 o quantity < lowStockThreshold, con
// pedido recomendado = ceil(averageDailySales × 60) y urgencia
// urgent(<7d) / high(<14d) / medium(<30d) / low. Orden: urgencia descendente
// (estable para empates).
func (uc *RestockUseCase) Suggestions(ctx context.Context) ([]dto.RestockSuggestionDTO, error) {
	products, err := uc.productRepo.List(repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -salesWindowDays)
	sales, err := uc.analyticsRepo.GetSalesByProduct(ctx, since)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	soldByProduct := make(map[string]int64, len(sales))
	for _, s := range sales {
		soldByProduct[s.ProductID] = s.UnitsSold
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	window := decimal.NewFromInt(salesWindowDays)
	suggestions := make([]dto.RestockSuggestionDTO, 0)

	for _, p := range products {
		totalSold := soldByProduct[p.ID]
		avgDailySales := decimal.NewFromInt(totalSold).Div(window)

		daysRemaining := decimal.NewFromInt(noRiskSentinelDays)
		if avgDailySales.IsPositive() {
			daysRemaining = decimal.NewFromInt(p.Quantity).Div(avgDailySales)
		}

		atRisk := daysRemaining.LessThan(decimal.NewFromInt(riskHorizonDays)) || p.IsLowStock()
		if !atRisk {
			continue
		}

		recommendedQty := avgDailySales.Mul(decimal.NewFromInt(supplyTargetDays)).Ceil().IntPart()
		unitCost := p.CostPrice
		if unitCost.IsZero() {
			unitCost = p.Price.Mul(costPriceFallbackFactor)
		}

		suggestions = append(suggestions, dto.RestockSuggestionDTO{
			Product: dto.RestockProductDTO{
				ID:              p.ID,
				Name:            p.Name,
				CurrentQuantity: p.Quantity,
				Category:        categoryNames[p.CategoryID],
			},
			Analytics: dto.RestockAnalyticsDTO{
				AverageDailySales:    avgDailySales.Round(2),
				TotalSoldLast90Days:  totalSold,
				DaysOfStockRemaining: daysRemaining.Floor().IntPart(),
			},
			Suggestion: dto.RestockOrderDTO{
				RecommendedOrderQuantity: recommendedQty,
				Urgency:                  urgencyFor(daysRemaining),
				EstimatedCost:            decimal.NewFromInt(recommendedQty).Mul(unitCost),
			},
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return urgencyRank(suggestions[i].Suggestion.Urgency) < urgencyRank(suggestions[j].Suggestion.Urgency)
	})
	return suggestions, nil
}

func urgencyFor(daysRemaining decimal.Decimal) string {
	switch {
	case daysRemaining.LessThan(decimal.NewFromInt(7)):
		return dto.UrgencyUrgent
	case daysRemaining.LessThan(decimal.NewFromInt(14)):
		return dto.UrgencyHigh
	case daysRemaining.LessThan(decimal.NewFromInt(30)):
		return dto.UrgencyMedium
	default:
		return dto.UrgencyLow
	}
}

func urgencyRank(u string) int {
	switch u {
	case dto.UrgencyUrgent:
		return 0
	case dto.UrgencyHigh:
		return 1
	case dto.UrgencyMedium:
		return 2
	default:
		return 3
	}
}
