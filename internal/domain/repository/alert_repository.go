package repository

import (
	"context"
	"time"
)

// LowStockRow resultado crudo de la consulta de stock bajo.
// Lo produce la DB; el use case lo convierte en DTO y calcula la proyección.
type LowStockRow struct {
	ProductID     int64
	ProductName   string
	SKU           string
	WarehouseID   int64
	WarehouseName string
	CurrentStock  int
	Threshold     int
	// Proveedor opcional (LEFT JOIN): nil cuando el producto no tiene proveedor.
	SupplierID    *int64
	SupplierName  *string
	SupplierEmail *string
	// Unidades vendidas en la ventana (suma de magnitudes de cambios negativos
	// con reason que contiene "sale"). Siempre > 0 por el filtro de la consulta.
	TotalSold int
}

// AlertRepository define la consulta de solo lectura para alertas de stock bajo.
// Las implementaciones no modifican datos.
type AlertRepository interface {
	// LowStock devuelve una fila por par (producto, bodega) de la empresa donde
	// el stock actual está en o bajo el umbral del tipo y hubo ventas desde `since`.
	// Productos sin ProductType o sin ventas recientes no generan alerta.
	LowStock(ctx context.Context, companyID int64, since time.Time) ([]LowStockRow, error)
}
