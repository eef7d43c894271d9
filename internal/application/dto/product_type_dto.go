package dto

// CreateProductTypeRequest entrada para crear un tipo de producto.
// LowStockThreshold cero o ausente usa el valor por defecto (10).
type CreateProductTypeRequest struct {
	Name              string `json:"name"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

// ProductTypeResponse salida de un tipo de producto.
type ProductTypeResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	LowStockThreshold int    `json:"low_stock_threshold"`
}

// ProductTypeListResponse lista de tipos de producto.
type ProductTypeListResponse struct {
	Items []ProductTypeResponse `json:"items"`
	Total int                   `json:"total"`
}
