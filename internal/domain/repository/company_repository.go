package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	// Create persiste la empresa y asigna el ID generado.
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devuelve nil, nil si la empresa no existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}
