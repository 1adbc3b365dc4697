package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tu-usuario/inventrack/internal/application/inventory"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
)

var _ inventory.ProductCSVRenderer = (*CSVRenderer)(nil)

// Umbral fijo de la columna "Low Stock Alert" del export, independiente del
// umbral configurable por producto (formato histórico del reporte).
const exportLowStockThreshold = 10

var csvHeaders = []string{
	"Product ID",
	"Name",
	"Category",
	"Supplier",
	"Price",
	"Quantity",
	"Total Value",
	"Low Stock Alert",
	"Status",
	"Date Added",
	"Last Updated",
}

// CSVRenderer genera el export CSV de productos.
type CSVRenderer struct{}

func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// RenderProducts produce el CSV con las 11 columnas del reporte.
// Fechas en formato dd/mm/yyyy; precios con dos decimales.
func (r *CSVRenderer) RenderProducts(products []*entity.Product, categoryNames map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range products {
		categoryName := categoryNames[p.CategoryID]
		if categoryName == "" {
			categoryName = "N/A"
		}
		supplier := p.Supplier
		if supplier == "" {
			supplier = "N/A"
		}
		lowStockAlert := "No"
		if p.Quantity < exportLowStockThreshold {
			lowStockAlert = "Yes"
		}
		row := []string{
			p.ID,
			p.Name,
			categoryName,
			supplier,
			p.Price.StringFixed(2),
			strconv.FormatInt(p.Quantity, 10),
			p.StockValue().StringFixed(2),
			lowStockAlert,
			productStatus(p),
			p.CreatedAt.Format("02/01/2006"),
			p.UpdatedAt.Format("02/01/2006"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// productStatus precedencia: Out of Stock > Discontinued > Active.
func productStatus(p *entity.Product) string {
	switch {
	case p.Quantity == 0:
		return "Out of Stock"
	case p.Discontinued:
		return "Discontinued"
	default:
		return "Active"
	}
}
