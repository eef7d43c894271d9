package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación del puerto InventoryLogRepository sobre PostgreSQL.
// Solo inserta: el log es append-only.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador del log de inventario. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create inserta una entrada del log y asigna ID y CreatedAt generados.
// El par (product_id, warehouse_id) debe existir en inventory → domain.ErrIntegrity si no.
func (r *InventoryLogRepo) Create(ctx context.Context, log *entity.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (product_id, warehouse_id, quantity_change, new_quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
		RETURNING id, created_at`
	var createdAt any
	if !log.CreatedAt.IsZero() {
		createdAt = log.CreatedAt
	}
	err := r.q.QueryRow(ctx, query,
		log.ProductID, log.WarehouseID, log.QuantityChange, log.NewQuantity, log.Reason, createdAt,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}
