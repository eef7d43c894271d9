package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa y asigna el ID generado.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `INSERT INTO companies (name) VALUES ($1) RETURNING id`
	if err := r.pool.QueryRow(ctx, query, company.Name).Scan(&company.ID); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve nil, nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `SELECT id, name FROM companies WHERE id = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List devuelve empresas con paginación.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT id, name FROM companies ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
