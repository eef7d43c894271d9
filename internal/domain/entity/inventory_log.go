package entity

import "time"

// InventoryLog es el registro inmutable de cambios de cantidad.
// QuantityChange negativo denota salida (ej. una venta); es la fuente de
// verdad para el cálculo de velocidad de ventas.
type InventoryLog struct {
	ID             int64
	ProductID      int64
	WarehouseID    int64
	QuantityChange int
	NewQuantity    int
	Reason         string
	CreatedAt      time.Time
}
