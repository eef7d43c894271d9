package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	pool *pgxpool.Pool
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(pool *pgxpool.Pool) *WarehouseRepo {
	return &WarehouseRepo{pool: pool}
}

// Create persiste una nueva bodega. Si la empresa no existe devuelve domain.ErrIntegrity.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `INSERT INTO warehouses (company_id, name) VALUES ($1, $2) RETURNING id`
	err := r.pool.QueryRow(ctx, query, warehouse.CompanyID, warehouse.Name).Scan(&warehouse.ID)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID. Devuelve nil, nil si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `SELECT id, company_id, name FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.pool.QueryRow(ctx, query, id).Scan(&w.ID, &w.CompanyID, &w.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListByCompany lista bodegas por empresa con paginación.
func (r *WarehouseRepo) ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, company_id, name
		FROM warehouses WHERE company_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
