package dto

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompanyListResponse lista de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Total int               `json:"total"`
}
