package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `INSERT INTO suppliers (name, contact_email) VALUES ($1, $2) RETURNING id`
	err := r.pool.QueryRow(ctx, query, supplier.Name, supplier.ContactEmail).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil, nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `SELECT id, name, contact_email FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.ContactEmail)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devuelve proveedores con paginación.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT id, name, contact_email FROM suppliers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
