// Package query contiene el núcleo genérico de filtrado y paginación
// compartido por todos los listados de entidades.
package query

// Op es el operador de una condición de filtro.
type Op int

const (
	// OpEq compara por igualdad exacta.
	OpEq Op = iota
	// OpILike hace substring match case-insensitive (ILIKE '%v%').
	OpILike
	// OpGte compara columna >= valor.
	OpGte
	// OpLte compara columna <= valor.
	OpLte
)

// Cond es una condición tipada sobre una columna de la entidad.
// Los filtros por entidad producen una lista de Cond explícita en lugar
// de inspeccionar campos por reflexión.
type Cond struct {
	Column string
	Op     Op
	Value  any
}

// Filter es la lista de condiciones que un filtro de entidad produce.
type Filter []Cond

// Eq agrega una condición de igualdad.
func (f Filter) Eq(column string, v any) Filter {
	return append(f, Cond{Column: column, Op: OpEq, Value: v})
}

// ILike agrega una condición de substring case-insensitive.
func (f Filter) ILike(column, v string) Filter {
	return append(f, Cond{Column: column, Op: OpILike, Value: v})
}

// Gte agrega una condición columna >= valor.
func (f Filter) Gte(column string, v any) Filter {
	return append(f, Cond{Column: column, Op: OpGte, Value: v})
}

// Lte agrega una condición columna <= valor.
func (f Filter) Lte(column string, v any) Filter {
	return append(f, Cond{Column: column, Op: OpLte, Value: v})
}

// Defaults de paginación.
const (
	DefaultPage      = 1
	DefaultPerPage   = 20
	MaxPerPage       = 100
	DefaultOrderBy   = "created_at"
	DirectionAsc     = "asc"
	DirectionDesc    = "desc"
	DefaultDirection = DirectionDesc
)

// Params son los parámetros de paginación y orden de un listado.
type Params struct {
	Page           int
	PerPage        int
	OrderBy        string
	OrderDirection string
}

// Normalize aplica defaults y clamps: page >= 1, per_page en [1,100],
// order_by default created_at, direction asc|desc (default desc).
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy == "" {
		p.OrderBy = DefaultOrderBy
	}
	if p.OrderDirection != DirectionAsc && p.OrderDirection != DirectionDesc {
		p.OrderDirection = DefaultDirection
	}
	return p
}

// Offset retorna el offset SQL derivado de page/per_page.
// Asume Params ya normalizados.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Result es el envelope paginado que retornan los listados.
type Result[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Map transforma los items del envelope preservando la metadata de página.
// Útil para convertir entidades a sus representaciones HTTP.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	items := make([]U, len(r.Items))
	for i, it := range r.Items {
		items[i] = fn(it)
	}
	return Result[U]{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		PerPage:    r.PerPage,
		TotalPages: r.TotalPages,
		HasNext:    r.HasNext,
		HasPrev:    r.HasPrev,
	}
}

// NewResult arma el envelope a partir de la página de items y el total.
// total_pages = ceil(total/per_page); has_next = page < total_pages;
// has_prev = page > 1.
func NewResult[T any](items []T, total int, p Params) Result[T] {
	totalPages := (total + p.PerPage - 1) / p.PerPage
	return Result[T]{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}
