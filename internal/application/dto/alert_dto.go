package dto

// SupplierInfo proveedor anidado en una alerta (null si el producto no tiene).
type SupplierInfo struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlert una alerta por par (producto, bodega).
type LowStockAlert struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	SKU           string `json:"sku"`
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	CurrentStock  int    `json:"current_stock"`
	Threshold     int    `json:"threshold"`
	// Proyección de agotamiento: floor(stock / promedio diario de ventas).
	// null si el promedio no es positivo.
	DaysUntilStockout *int          `json:"days_until_stockout"`
	Supplier          *SupplierInfo `json:"supplier"`
}

// LowStockAlertsResponse salida de GET /api/companies/{id}/alerts/low-stock.
// Alerts siempre serializa como arreglo (vacío si no hay alertas).
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
