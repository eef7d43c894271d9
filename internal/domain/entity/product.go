package entity

import "github.com/shopspring/decimal"

// Product representa un producto o SKU del catálogo.
// ProductTypeID y SupplierID son opcionales; CompanyID es obligatorio a nivel de esquema.
type Product struct {
	ID            int64
	CompanyID     *int64
	ProductTypeID *int64
	SupplierID    *int64
	SKU           string // único en el catálogo (índice único + verificación previa)
	Name          string
	Price         decimal.Decimal // NUMERIC(10,2)
}
