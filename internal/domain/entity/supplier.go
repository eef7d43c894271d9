package entity

// Supplier representa un proveedor. El enlace desde Product es opcional.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
}
