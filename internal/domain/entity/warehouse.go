package entity

// Warehouse representa una bodega donde se almacena inventario. Pertenece a una sola empresa.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
}
