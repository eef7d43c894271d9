package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
// SKU duplicado → domain.ErrDuplicate; company/tipo/proveedor inexistente → domain.ErrIntegrity.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (company_id, product_type_id, supplier_id, sku, name, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.CompanyID, product.ProductTypeID, product.SupplierID,
		product.SKU, product.Name, product.Price,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isIntegrityViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, company_id, product_type_id, supplier_id, sku, name, price
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.ProductTypeID, &p.SupplierID, &p.SKU, &p.Name, &p.Price,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetBySKU obtiene un producto por SKU. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, product_type_id, supplier_id, sku, name, price
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, sku).Scan(
		&p.ID, &p.CompanyID, &p.ProductTypeID, &p.SupplierID, &p.SKU, &p.Name, &p.Price,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}
