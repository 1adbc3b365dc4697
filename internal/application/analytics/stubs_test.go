package analytics_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// Dobles de solo lectura para los casos de uso de analítica: devuelven listas
// fijas, las escrituras no se usan aquí.

type stubProductRepo struct {
	products []*entity.Product
}

func (s *stubProductRepo) Create(*entity.Product) error { return nil }

func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubProductRepo) GetForUpdate(id string) (*entity.Product, error) { return s.GetByID(id) }

func (s *stubProductRepo) Update(*entity.Product) error { return nil }

func (s *stubProductRepo) UpdateQuantity(string, int64, time.Time) error { return nil }

func (s *stubProductRepo) UpdatePrice(string, decimal.Decimal, time.Time) error { return nil }

func (s *stubProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, _ := s.GetByID(id); p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) ListWithExpiry() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.products {
		if p.HasExpiry && p.ExpiryDate != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range s.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) CountByCategory(string) (int64, error) { return 0, nil }

func (s *stubProductRepo) SetCategoryByIDs([]string, string) (int64, error) { return 0, nil }

func (s *stubProductRepo) UpdateByIDs([]string, repository.ProductBulkUpdate) (int64, error) {
	return 0, nil
}

func (s *stubProductRepo) DeleteByIDs([]string) (int64, error) { return 0, nil }

func (s *stubProductRepo) Delete(string) error { return nil }

type stubCategoryRepo struct {
	categories []*entity.Category
}

func (s *stubCategoryRepo) Create(*entity.Category) error { return nil }

func (s *stubCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubCategoryRepo) GetByName(string) (*entity.Category, error) { return nil, nil }

func (s *stubCategoryRepo) Update(*entity.Category) error { return nil }

func (s *stubCategoryRepo) List() ([]*entity.Category, error) { return s.categories, nil }

func (s *stubCategoryRepo) Delete(string) error { return nil }

type stubAnalyticsRepo struct {
	sales   []repository.ProductSalesResult
	summary []repository.MovementTypeSummary
}

func (s *stubAnalyticsRepo) GetSalesByProduct(context.Context, time.Time) ([]repository.ProductSalesResult, error) {
	return s.sales, nil
}

func (s *stubAnalyticsRepo) GetMovementSummary(context.Context, *time.Time, *time.Time) ([]repository.MovementTypeSummary, error) {
	return s.summary, nil
}

type stubAuditor struct {
	entries []audit.Entry
}

func (a *stubAuditor) Record(_ context.Context, e audit.Entry) {
	a.entries = append(a.entries, e)
}
