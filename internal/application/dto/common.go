package dto

// Límites de paginación compartidos por todos los listados.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest ?limit=&offset= de los listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize deja la página dentro de rango: límite por defecto si falta, recorte a MaxPageLimit
// y offset no negativo.
func (p *PageRequest) Normalize() {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageLimit
	case p.Limit > MaxPageLimit:
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de todas las respuestas de error. Code es estable
// (VALIDATION, NOT_FOUND, CLIENT_REQUIRED...) y Message va en lenguaje natural.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
