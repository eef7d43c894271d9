package dto

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
}

// WarehouseListResponse lista de bodegas de una empresa.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}
