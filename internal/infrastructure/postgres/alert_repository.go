package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consultas de solo lectura para alertas de stock bajo.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository construye el adaptador de alertas.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// LowStock devuelve los pares (producto, bodega) de la empresa con stock en o
// bajo el umbral de su tipo y con ventas registradas desde `since`.
//
// La venta se deriva del log: cambios negativos cuyo reason contiene "sale"
// (LIKE sensible a mayúsculas). El INNER JOIN con product_types excluye
// productos sin tipo; el filtro total_sold > 0 exige una fila del agregado,
// así que productos sin ventas recientes nunca alertan aunque estén bajo el
// umbral. El proveedor va por LEFT JOIN (columnas NULL si no hay).
func (r *AlertRepo) LowStock(ctx context.Context, companyID int64, since time.Time) ([]repository.LowStockRow, error) {
	const query = `
	WITH sales AS (
	    SELECT
	        l.product_id,
	        SUM(CASE WHEN l.quantity_change < 0 THEN -l.quantity_change ELSE 0 END) AS total_sold
	    FROM inventory_logs l
	    WHERE l.created_at >= $2
	      AND l.reason LIKE '%sale%'
	    GROUP BY l.product_id
	)
	SELECT
	    p.id                     AS product_id,
	    p.name                   AS product_name,
	    p.sku,
	    w.id                     AS warehouse_id,
	    w.name                   AS warehouse_name,
	    i.quantity               AS current_stock,
	    pt.low_stock_threshold   AS threshold,
	    s.id                     AS supplier_id,
	    s.name                   AS supplier_name,
	    s.contact_email          AS supplier_contact_email,
	    sales.total_sold
	FROM products p
	JOIN inventory     i  ON i.product_id  = p.id
	JOIN warehouses    w  ON w.id          = i.warehouse_id
	JOIN product_types pt ON pt.id         = p.product_type_id
	LEFT JOIN suppliers s ON s.id          = p.supplier_id
	LEFT JOIN sales       ON sales.product_id = p.id
	WHERE w.company_id = $1
	  AND i.quantity  <= pt.low_stock_threshold
	  AND sales.total_sold > 0
	ORDER BY p.id, w.id`

	rows, err := r.pool.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alerts.LowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.SKU,
			&row.WarehouseID,
			&row.WarehouseName,
			&row.CurrentStock,
			&row.Threshold,
			&row.SupplierID,
			&row.SupplierName,
			&row.SupplierEmail,
			&row.TotalSold,
		); err != nil {
			return nil, fmt.Errorf("alerts.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
