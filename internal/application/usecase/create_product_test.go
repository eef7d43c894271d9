package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() dto.CreateProductInput {
	return dto.CreateProductInput{
		Name:            "Café molido 500g",
		SKU:             "CAF-001",
		Price:           decimal.RequireFromString("19.99"),
		WarehouseID:     1,
		InitialQuantity: 100,
	}
}

func TestCreateProduct_Exitoso(t *testing.T) {
	products := newFakeProductRepo()
	stock := newFakeStockRepo(1)
	tx := &fakeTxRunner{products: products, stock: stock}
	uc := usecase.NewCreateProductUseCase(tx, products)

	resp, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Product and initial inventory created successfully.", resp.Message)
	assert.Equal(t, int64(1), resp.Product.ID)
	assert.Equal(t, "Café molido 500g", resp.Product.Name)
	assert.Equal(t, "CAF-001", resp.Product.SKU)
	assert.Equal(t, 1, tx.runs)

	// Producto y stock inicial quedaron persistidos juntos.
	p, err := products.GetBySKU(context.Background(), "CAF-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.99")))

	s, err := stock.Get(context.Background(), p.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 100, s.Quantity)
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	products := newFakeProductRepo()
	stock := newFakeStockRepo(1)
	tx := &fakeTxRunner{products: products, stock: stock}
	uc := usecase.NewCreateProductUseCase(tx, products)

	_, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)

	// Segundo create con el mismo SKU: 409 sin abrir otra transacción.
	_, err = uc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, tx.runs)
}

func TestCreateProduct_BodegaInexistenteRevierteTodo(t *testing.T) {
	products := newFakeProductRepo()
	stock := newFakeStockRepo(1)
	tx := &fakeTxRunner{products: products, stock: stock}
	uc := usecase.NewCreateProductUseCase(tx, products)

	in := validInput()
	in.WarehouseID = 99

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrIntegrity)

	// El insert del producto también se revirtió.
	p, err := products.GetBySKU(context.Background(), "CAF-001")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, stock.rows)
}

func TestCreateProduct_CamposOpcionales(t *testing.T) {
	products := newFakeProductRepo()
	stock := newFakeStockRepo(1)
	tx := &fakeTxRunner{products: products, stock: stock}
	uc := usecase.NewCreateProductUseCase(tx, products)

	companyID, typeID := int64(7), int64(3)
	in := validInput()
	in.CompanyID = &companyID
	in.ProductTypeID = &typeID

	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	p, err := products.GetBySKU(context.Background(), "CAF-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.CompanyID)
	assert.Equal(t, int64(7), *p.CompanyID)
	require.NotNil(t, p.ProductTypeID)
	assert.Equal(t, int64(3), *p.ProductTypeID)
	assert.Nil(t, p.SupplierID)
}

func TestGetProductByID(t *testing.T) {
	products := newFakeProductRepo()
	stock := newFakeStockRepo(1)
	tx := &fakeTxRunner{products: products, stock: stock}
	uc := usecase.NewCreateProductUseCase(tx, products)

	resp, err := uc.Create(context.Background(), validInput())
	require.NoError(t, err)

	found, err := uc.GetByID(context.Background(), resp.Product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "CAF-001", found.SKU)

	missing, err := uc.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
