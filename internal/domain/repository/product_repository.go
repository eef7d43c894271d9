package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// Create asigna el ID generado y traduce violaciones de constraint a errores
// de dominio (SKU duplicado → ErrDuplicate, FK/NOT NULL → ErrIntegrity).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetBySKU devuelve nil, nil si no existe producto con ese SKU.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
}
