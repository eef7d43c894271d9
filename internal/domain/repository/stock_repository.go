package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// StockRepository define el puerto para el nivel de stock por producto+bodega.
// Usado dentro de transacciones para garantizar consistencia con la creación
// del producto.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	Get(ctx context.Context, productID, warehouseID int64) (*entity.Stock, error)
}
