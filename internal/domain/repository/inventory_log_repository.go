package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// InventoryLogRepository define el puerto para el registro de cambios de inventario.
// Las filas son inmutables una vez escritas; no hay Update ni Delete.
type InventoryLogRepository interface {
	Create(ctx context.Context, log *entity.InventoryLog) error
}
