package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	httpiface "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/stretchr/testify/require"
)

// Fakes en memoria con la misma semántica que los repos de postgres.

type fakeProductRepo struct {
	products map[string]*entity.Product
	nextID   int64
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, ok := f.products[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.SKU] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := f.products[sku]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type stockKey struct{ productID, warehouseID int64 }

type fakeStockRepo struct {
	warehouses map[int64]bool
	rows       map[stockKey]int
}

func (f *fakeStockRepo) Create(_ context.Context, s *entity.Stock) error {
	if !f.warehouses[s.WarehouseID] {
		return domain.ErrIntegrity
	}
	f.rows[stockKey{s.ProductID, s.WarehouseID}] = s.Quantity
	return nil
}

func (f *fakeStockRepo) Get(_ context.Context, productID, warehouseID int64) (*entity.Stock, error) {
	q, ok := f.rows[stockKey{productID, warehouseID}]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Quantity: q}, nil
}

type fakeTxRunner struct {
	products *fakeProductRepo
	stock    *fakeStockRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	snapshot := make(map[string]*entity.Product, len(f.products.products))
	for k, v := range f.products.products {
		cp := *v
		snapshot[k] = &cp
	}
	if err := fn(f.products, f.stock); err != nil {
		f.products.products = snapshot
		return err
	}
	return nil
}

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	c.ID = int64(len(f.companies) + 1)
	cp := *c
	f.companies[c.ID] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanyRepo) List(_ context.Context, _, _ int) ([]*entity.Company, error) {
	return nil, nil
}

type fakeAlertRepo struct {
	rows []repository.LowStockRow
}

func (f *fakeAlertRepo) LowStock(_ context.Context, _ int64, _ time.Time) ([]repository.LowStockRow, error) {
	return f.rows, nil
}

// newProductApp arma una app de Fiber con la ruta de productos sobre fakes.
// La bodega 1 existe; cualquier otra dispara la violación de integridad.
func newProductApp() (*fiber.App, *fakeProductRepo, *fakeStockRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	stock := &fakeStockRepo{warehouses: map[int64]bool{1: true}, rows: map[stockKey]int{}}
	tx := &fakeTxRunner{products: products, stock: stock}
	handler := httpiface.NewProductHandler(usecase.NewCreateProductUseCase(tx, products))

	app := fiber.New()
	app.Post("/api/products", handler.Create)
	app.Get("/api/products/:id", handler.GetByID)
	return app, products, stock
}

// newAlertApp arma una app con el reporte de alertas; la empresa 1 existe.
func newAlertApp(rows []repository.LowStockRow) *fiber.App {
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		1: {ID: 1, Name: "Acme Distribución"},
	}}
	handler := httpiface.NewAlertHandler(
		usecase.NewLowStockAlertUseCase(companies, &fakeAlertRepo{rows: rows}),
	)

	app := fiber.New()
	app.Get("/api/companies/:company_id/alerts/low-stock", handler.LowStock)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req, err := nethttp.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func errorMessage(t *testing.T, body string) string {
	t.Helper()
	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out.Error
}
