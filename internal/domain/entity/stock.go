package entity

// Stock representa el nivel actual de un producto en una bodega.
// Una fila por par (producto, bodega); clave compuesta.
type Stock struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int
}
