package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ProductTypeRepository = (*ProductTypeRepo)(nil)

// ProductTypeRepo implementación del puerto ProductTypeRepository sobre PostgreSQL.
type ProductTypeRepo struct {
	pool *pgxpool.Pool
}

// NewProductTypeRepository construye el adaptador de persistencia para tipos de producto.
func NewProductTypeRepository(pool *pgxpool.Pool) *ProductTypeRepo {
	return &ProductTypeRepo{pool: pool}
}

// Create persiste un nuevo tipo. El nombre es único: 23505 → domain.ErrDuplicate.
func (r *ProductTypeRepo) Create(ctx context.Context, productType *entity.ProductType) error {
	query := `INSERT INTO product_types (name, low_stock_threshold) VALUES ($1, $2) RETURNING id`
	err := r.pool.QueryRow(ctx, query, productType.Name, productType.LowStockThreshold).Scan(&productType.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo por ID. Devuelve nil, nil si no existe.
func (r *ProductTypeRepo) GetByID(ctx context.Context, id int64) (*entity.ProductType, error) {
	query := `SELECT id, name, low_stock_threshold FROM product_types WHERE id = $1`
	var t entity.ProductType
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.LowStockThreshold)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product type: %w", err)
	}
	return &t, nil
}

// List devuelve tipos de producto con paginación.
func (r *ProductTypeRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProductType, error) {
	query := `SELECT id, name, low_stock_threshold FROM product_types ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductType
	for rows.Next() {
		var t entity.ProductType
		if err := rows.Scan(&t.ID, &t.Name, &t.LowStockThreshold); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
