package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que producto y stock inicial se
// escriben juntos o no se escribe nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
