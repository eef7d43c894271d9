package entity

// BundleComponent relaciona un producto compuesto (bundle) con sus componentes.
// Declarado en el modelo; ninguna operación actual lo consulta.
type BundleComponent struct {
	BundleProductID    int64
	ComponentProductID int64
	QuantityInBundle   int
}
