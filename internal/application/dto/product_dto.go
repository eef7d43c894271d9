package dto

import "github.com/shopspring/decimal"

// CreateProductInput entrada ya validada para crear un producto con stock inicial.
// El handler HTTP se encarga del parseo crudo (price como string o número, etc.).
type CreateProductInput struct {
	Name            string
	SKU             string
	Price           decimal.Decimal
	WarehouseID     int64
	InitialQuantity int
	// Opcionales: el esquema los valida al hacer commit (FK), no la aplicación.
	CompanyID     *int64
	ProductTypeID *int64
	SupplierID    *int64
}

// CreatedProduct resumen del producto creado.
type CreatedProduct struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// CreateProductResponse salida 201 de POST /api/products.
type CreateProductResponse struct {
	Message string         `json:"message"`
	Product CreatedProduct `json:"product"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID            int64           `json:"id"`
	CompanyID     *int64          `json:"company_id"`
	ProductTypeID *int64          `json:"product_type_id"`
	SupplierID    *int64          `json:"supplier_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
}
