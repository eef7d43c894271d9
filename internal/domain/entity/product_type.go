package entity

// DefaultLowStockThreshold umbral de alerta cuando el tipo no define uno.
const DefaultLowStockThreshold = 10

// ProductType define el umbral de stock bajo compartido por todos los productos del tipo.
// El nombre es único en el catálogo.
type ProductType struct {
	ID                int64
	Name              string
	LowStockThreshold int
}
