package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Sin librería de mocks:
// mapas con la misma semántica que los repos reales (ID generado, ErrDuplicate
// en SKU repetido, ErrIntegrity en bodega inexistente).
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product // por SKU
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
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
	warehouses map[int64]bool // IDs de bodegas existentes; nil = todas válidas
	rows       map[stockKey]*entity.Stock
}

func newFakeStockRepo(warehouseIDs ...int64) *fakeStockRepo {
	f := &fakeStockRepo{rows: map[stockKey]*entity.Stock{}}
	if len(warehouseIDs) > 0 {
		f.warehouses = map[int64]bool{}
		for _, id := range warehouseIDs {
			f.warehouses[id] = true
		}
	}
	return f
}

func (f *fakeStockRepo) Create(_ context.Context, s *entity.Stock) error {
	if f.warehouses != nil && !f.warehouses[s.WarehouseID] {
		return domain.ErrIntegrity
	}
	cp := *s
	f.rows[stockKey{s.ProductID, s.WarehouseID}] = &cp
	return nil
}

func (f *fakeStockRepo) Get(_ context.Context, productID, warehouseID int64) (*entity.Stock, error) {
	s, ok := f.rows[stockKey{productID, warehouseID}]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// fakeTxRunner imita la atomicidad del TxRunner real: si fn falla, restaura el
// estado de los fakes al del inicio de la "transacción".
type fakeTxRunner struct {
	products *fakeProductRepo
	stock    *fakeStockRepo
	runs     int
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	f.runs++

	productSnapshot := make(map[string]*entity.Product, len(f.products.products))
	for k, v := range f.products.products {
		cp := *v
		productSnapshot[k] = &cp
	}
	stockSnapshot := make(map[stockKey]*entity.Stock, len(f.stock.rows))
	for k, v := range f.stock.rows {
		cp := *v
		stockSnapshot[k] = &cp
	}

	if err := fn(f.products, f.stock); err != nil {
		f.products.products = productSnapshot
		f.stock.rows = stockSnapshot
		return err
	}
	return nil
}

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
	nextID    int64
}

func newFakeCompanyRepo(names ...string) *fakeCompanyRepo {
	f := &fakeCompanyRepo{companies: map[int64]*entity.Company{}}
	for _, name := range names {
		_ = f.Create(context.Background(), &entity.Company{Name: name})
	}
	return f
}

func (f *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	f.nextID++
	c.ID = f.nextID
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

func (f *fakeCompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.companies[id]; ok {
			cp := *c
			list = append(list, &cp)
		}
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

// fakeAlertRepo devuelve filas fijas y captura los argumentos de la consulta.
type fakeAlertRepo struct {
	rows          []repository.LowStockRow
	err           error
	lastCompanyID int64
	lastSince     time.Time
	calls         int
}

func (f *fakeAlertRepo) LowStock(_ context.Context, companyID int64, since time.Time) ([]repository.LowStockRow, error) {
	f.calls++
	f.lastCompanyID = companyID
	f.lastSince = since
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}
