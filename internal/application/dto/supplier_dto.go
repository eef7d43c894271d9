package dto

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// SupplierListResponse lista de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Total int                `json:"total"`
}
