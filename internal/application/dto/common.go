package dto

// ErrorResponse cuerpo de error HTTP: un objeto JSON con la clave "error".
type ErrorResponse struct {
	Error string `json:"error"`
}

// PageRequest paginación para listados del catálogo.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
