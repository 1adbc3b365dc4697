package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/application/usecase"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

func buildProducts(products ...*entity.Product) (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo(products...)
	categories := newFakeCategoryRepo(&entity.Category{ID: "cat-1", Name: "Bebidas"})
	return usecase.NewProductUseCase(repo, categories, nil), repo
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:       "Café molido",
		CategoryID: "cat-1",
		Price:      decimal.RequireFromString("12.50"),
		CostPrice:  decimal.RequireFromString("8.00"),
		Quantity:   20,
	}
}

func TestProductCreate_AplicaDefaults(t *testing.T) {
	uc, _ := buildProducts()

	out, err := uc.Create(context.Background(), "user-1", validCreate())

	require.NoError(t, err)
	assert.Equal(t, int64(10), out.LowStockThreshold, "umbral por defecto")
	assert.Equal(t, "Main Storage", out.Location, "ubicación por defecto")
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.StockValue.Equal(decimal.RequireFromString("250.00")), "12.50 × 20")
	assert.True(t, out.ProfitPerUnit.Equal(decimal.RequireFromString("4.50")))
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _ := buildProducts()
	in := validCreate()
	in.CategoryID = "no-existe"

	_, err := uc.Create(context.Background(), "user-1", in)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_ValidacionesDeEntrada(t *testing.T) {
	uc, _ := buildProducts()

	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sin nombre", func(in *dto.CreateProductRequest) { in.Name = "" }},
		{"sin categoría", func(in *dto.CreateProductRequest) { in.CategoryID = "" }},
		{"precio negativo", func(in *dto.CreateProductRequest) { in.Price = decimal.NewFromInt(-1) }},
		{"costo negativo", func(in *dto.CreateProductRequest) { in.CostPrice = decimal.NewFromInt(-1) }},
		{"cantidad negativa", func(in *dto.CreateProductRequest) { in.Quantity = -1 }},
		{"umbral negativo", func(in *dto.CreateProductRequest) {
			neg := int64(-1)
			in.LowStockThreshold = &neg
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), "user-1", in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductUpdate_ParcheParcial(t *testing.T) {
	uc, repo := buildProducts()
	created, err := uc.Create(context.Background(), "user-1", validCreate())
	require.NoError(t, err)

	newName := "Café premium"
	newPrice := decimal.RequireFromString("15.00")
	out, err := uc.Update(context.Background(), "user-1", created.ID, dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "Café premium", out.Name)
	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "Main Storage", out.Location, "los campos no enviados quedan intactos")

	stored, _ := repo.GetByID(created.ID)
	assert.Equal(t, int64(20), stored.Quantity, "update nunca toca la cantidad")
}

func TestProductUpdate_CategoriaDestinoDebeExistir(t *testing.T) {
	uc, _ := buildProducts()
	created, err := uc.Create(context.Background(), "user-1", validCreate())
	require.NoError(t, err)

	missing := "no-existe"
	_, err = uc.Update(context.Background(), "user-1", created.ID, dto.UpdateProductRequest{
		CategoryID: &missing,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_ProductoInexistente(t *testing.T) {
	uc, _ := buildProducts()

	name := "x"
	_, err := uc.Update(context.Background(), "user-1", "no-existe", dto.UpdateProductRequest{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	uc, repo := buildProducts()
	created, err := uc.Create(context.Background(), "user-1", validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "user-1", created.ID))
	gone, _ := repo.GetByID(created.ID)
	assert.Nil(t, gone)

	require.ErrorIs(t, uc.Delete(context.Background(), "user-1", created.ID), domain.ErrNotFound)
}

func TestProductList_IncluyeDerivados(t *testing.T) {
	uc, _ := buildProducts()
	_, err := uc.Create(context.Background(), "user-1", validCreate())
	require.NoError(t, err)

	out, err := uc.List(repository.ProductFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Items, 1)
	assert.False(t, out.Items[0].IsLowStock, "20 unidades sobre umbral 10")
	assert.Equal(t, entity.ExpiryNone, out.Items[0].ExpiryStatus)
}
