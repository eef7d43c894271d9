package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ProductTypeRepository define el puerto de persistencia para ProductType.
// El nombre del tipo es único; Create devuelve domain.ErrDuplicate si ya existe.
type ProductTypeRepository interface {
	Create(ctx context.Context, productType *entity.ProductType) error
	GetByID(ctx context.Context, id int64) (*entity.ProductType, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ProductType, error)
}
