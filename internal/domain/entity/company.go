package entity

// Company representa una empresa dueña de bodegas y productos.
type Company struct {
	ID   int64
	Name string
}
