package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de persistencia para stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserta el nivel inicial de un producto en una bodega.
// Bodega inexistente → domain.ErrIntegrity (la tx que lo contiene hace rollback).
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `INSERT INTO inventory (product_id, warehouse_id, quantity) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.WarehouseID, stock.Quantity)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrIntegrity
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// Get obtiene el nivel actual de un producto en una bodega. Devuelve nil, nil si no existe.
func (r *StockRepo) Get(ctx context.Context, productID, warehouseID int64) (*entity.Stock, error) {
	query := `SELECT product_id, warehouse_id, quantity FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(&s.ProductID, &s.WarehouseID, &s.Quantity)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &s, nil
}
