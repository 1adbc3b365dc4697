package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/infrastructure/export"
)

func renderRows(t *testing.T, products ...*entity.Product) [][]string {
	t.Helper()
	out, err := export.NewCSVRenderer().RenderProducts(products, map[string]string{"cat-1": "Bebidas"})
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	return rows
}

func exportProduct(id string) *entity.Product {
	return &entity.Product{
		ID:                id,
		Name:              "Café molido",
		CategoryID:        "cat-1",
		Supplier:          "Distribuidora Norte",
		Price:             decimal.RequireFromString("12.5"),
		Quantity:          20,
		LowStockThreshold: 5,
		CreatedAt:         time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt:         time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderProducts_CabeceraDeOnceColumnas(t *testing.T) {
	rows := renderRows(t)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"Product ID", "Name", "Category", "Supplier", "Price", "Quantity",
		"Total Value", "Low Stock Alert", "Status", "Date Added", "Last Updated",
	}, rows[0])
}

func TestRenderProducts_FilaCompleta(t *testing.T) {
	rows := renderRows(t, exportProduct("p1"))

	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"p1", "Café molido", "Bebidas", "Distribuidora Norte",
		"12.50", "20", "250.00", "No", "Active", "15/01/2026", "03/02/2026",
	}, rows[1])
}

func TestRenderProducts_AlertaFijaEnDiezUnidades(t *testing.T) {
	// La columna usa el umbral fijo de 10 del reporte, no el del producto.
	conAlerta := exportProduct("p1")
	conAlerta.Quantity = 9
	conAlerta.LowStockThreshold = 2
	sinAlerta := exportProduct("p2")
	sinAlerta.Quantity = 10
	sinAlerta.LowStockThreshold = 50

	rows := renderRows(t, conAlerta, sinAlerta)

	require.Len(t, rows, 3)
	assert.Equal(t, "Yes", rows[1][7])
	assert.Equal(t, "No", rows[2][7])
}

func TestRenderProducts_PrecedenciaDeEstado(t *testing.T) {
	agotadoYDescontinuado := exportProduct("p1")
	agotadoYDescontinuado.Quantity = 0
	agotadoYDescontinuado.Discontinued = true
	descontinuado := exportProduct("p2")
	descontinuado.Discontinued = true
	activo := exportProduct("p3")

	rows := renderRows(t, agotadoYDescontinuado, descontinuado, activo)

	require.Len(t, rows, 4)
	assert.Equal(t, "Out of Stock", rows[1][8], "agotado gana a descontinuado")
	assert.Equal(t, "Discontinued", rows[2][8])
	assert.Equal(t, "Active", rows[3][8])
}

func TestRenderProducts_FallbacksNA(t *testing.T) {
	p := exportProduct("p1")
	p.CategoryID = "cat-borrada"
	p.Supplier = ""

	rows := renderRows(t, p)

	require.Len(t, rows, 2)
	assert.Equal(t, "N/A", rows[1][2])
	assert.Equal(t, "N/A", rows[1][3])
}
