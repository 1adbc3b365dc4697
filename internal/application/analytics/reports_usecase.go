package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// uncategorizedBucket bucket para productos cuya categoría no resuelve.
const uncategorizedBucket = "Uncategorized"

// Estados de alerta de vencimiento.
const (
	ExpiryAlertExpired  = "expired"
	ExpiryAlertCritical = "critical"
	ExpiryAlertWarning  = "warning"
	ExpiryAlertOK       = "ok"
)

// ValuationPDFRenderer renderiza el reporte de valoración como PDF.
type ValuationPDFRenderer interface {
	RenderValuation(v *dto.ValuationDTO) ([]byte, error)
}

// AuditRecorder bitácora best-effort para las acciones de exportación.
type AuditRecorder interface {
	Record(ctx context.Context, e audit.Entry)
}

// ReportsUseCase reportes de valoración y listas de alerta. Solo lectura;
// el único efecto secundario es la entrada de bitácora al exportar.
type ReportsUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	pdf          ValuationPDFRenderer
	auditor      AuditRecorder
}

// NewReportsUseCase construye el caso de uso. pdf y auditor pueden ser nil.
func NewReportsUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	pdf ValuationPDFRenderer,
	auditor AuditRecorder,
) *ReportsUseCase {
	return &ReportsUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		pdf:          pdf,
		auditor:      auditor,
	}
}

// Valuation reporte de valoración: totales recalculados de forma independiente
// del dashboard, con desglose por categoría y bucket "Uncategorized".
func (uc *ReportsUseCase) Valuation(ctx context.Context) (*dto.ValuationDTO, error) {
	products, err := uc.productRepo.List(repository.ProductFilter{})
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

	v := &dto.ValuationDTO{
		TotalProducts:   int64(len(products)),
		TotalStockValue: decimal.Zero,
		TotalCostValue:  decimal.Zero,
		GeneratedAt:     time.Now(),
	}
	byCategory := make(map[string]*dto.CategoryValuationDTO)
	order := make([]string, 0)

	for _, p := range products {
		qty := decimal.NewFromInt(p.Quantity)
		stockValue := p.Price.Mul(qty)
		costValue := p.CostPrice.Mul(qty)

		v.TotalQuantity += p.Quantity
		v.TotalStockValue = v.TotalStockValue.Add(stockValue)
		v.TotalCostValue = v.TotalCostValue.Add(costValue)

		catName := names[p.CategoryID]
		if catName == "" {
			catName = uncategorizedBucket
		}
		row, ok := byCategory[catName]
		if !ok {
			row = &dto.CategoryValuationDTO{
				Category:   catName,
				StockValue: decimal.Zero,
				CostValue:  decimal.Zero,
			}
			byCategory[catName] = row
			order = append(order, catName)
		}
		row.ProductCount++
		row.Quantity += p.Quantity
		row.StockValue = row.StockValue.Add(stockValue)
		row.CostValue = row.CostValue.Add(costValue)
		row.Profit = row.StockValue.Sub(row.CostValue)
	}

	v.TotalProfit = v.TotalStockValue.Sub(v.TotalCostValue)
	v.ProfitMargin = profitMargin(v.TotalProfit, v.TotalStockValue)

	v.ByCategory = make([]dto.CategoryValuationDTO, 0, len(order))
	for _, name := range order {
		v.ByCategory = append(v.ByCategory, *byCategory[name])
	}
	return v, nil
}

// ValuationPDF genera el reporte de valoración en PDF y registra la
// exportación en la bitácora.
func (uc *ReportsUseCase) ValuationPDF(ctx context.Context, userID string) ([]byte, error) {
	v, err := uc.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.RenderValuation(v)
	if err != nil {
		return nil, err
	}
	if uc.auditor != nil {
		uc.auditor.Record(ctx, audit.Entry{
			UserID:      userID,
			Action:      entity.ActionExport,
			Entity:      entity.EntitySystem,
			Description: "Reporte de valoración exportado a PDF",
		})
	}
	return out, nil
}

// LowStockList productos con cantidad bajo su umbral, cantidad ascendente.
func (uc *ReportsUseCase) LowStockList() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p, now))
	}
	return out, nil
}

// ExpiryAlerts productos con control de vencimiento cuya fecha cae dentro de
// los próximos 30 días (o ya pasó), ordenados por días restantes ascendente.
func (uc *ReportsUseCase) ExpiryAlerts(now time.Time) ([]dto.ExpiryAlertDTO, error) {
	products, err := uc.productRepo.ListWithExpiry()
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

	alerts := make([]dto.ExpiryAlertDTO, 0, len(products))
	for _, p := range products {
		if p.ExpiryDate == nil {
			continue
		}
		days := p.DaysUntilExpiry(now)
		if days > 30 {
			continue
		}
		alerts = append(alerts, dto.ExpiryAlertDTO{
			ProductID:       p.ID,
			Name:            p.Name,
			Category:        names[p.CategoryID],
			Quantity:        p.Quantity,
			ExpiryDate:      *p.ExpiryDate,
			DaysUntilExpiry: days,
			Status:          expiryAlertStatus(days),
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilExpiry < alerts[j].DaysUntilExpiry
	})
	return alerts, nil
}

// expiryAlertStatus clasifica por días restantes: expired(<0), critical(<=7),
// warning(<=30), ok.
func expiryAlertStatus(days int) string {
	switch {
	case days < 0:
		return ExpiryAlertExpired
	case days <= 7:
		return ExpiryAlertCritical
	case days <= 30:
		return ExpiryAlertWarning
	default:
		return ExpiryAlertOK
	}
}

// toProductResponse arma la representación con derivados de un producto.
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
