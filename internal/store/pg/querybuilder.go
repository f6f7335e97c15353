package pg

import (
	"fmt"
	"strings"

	"github.com/dropDatabas3/teamspace/internal/observability/logger"
	"github.com/dropDatabas3/teamspace/internal/query"
)

// buildWhere arma la cláusula WHERE a partir de las condiciones del filtro.
// Condiciones sobre columnas fuera de la whitelist se ignoran en silencio:
// es la red de seguridad contra filtros malformados, no un error.
// Retorna el SQL (vacío si no hay condiciones) y los args posicionales.
func buildWhere(f query.Filter, allowed map[string]bool) (string, []any) {
	if len(f) == 0 {
		return "", nil
	}

	var (
		clauses []string
		args    []any
	)
	for _, c := range f {
		if !allowed[c.Column] {
			continue
		}
		n := len(args) + 1
		switch c.Op {
		case query.OpILike:
			clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", c.Column, n))
			args = append(args, "%"+fmt.Sprintf("%v", c.Value)+"%")
		case query.OpGte:
			clauses = append(clauses, fmt.Sprintf("%s >= $%d", c.Column, n))
			args = append(args, c.Value)
		case query.OpLte:
			clauses = append(clauses, fmt.Sprintf("%s <= $%d", c.Column, n))
			args = append(args, c.Value)
		default:
			clauses = append(clauses, fmt.Sprintf("%s = $%d", c.Column, n))
			args = append(args, c.Value)
		}
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// orderClause arma el ORDER BY validando order_by contra la whitelist.
// Un order_by desconocido cae al default (created_at) con un warn:
// los nombres de columna no se pueden parametrizar, así que jamás
// interpolamos un valor controlado por el cliente sin validar.
func orderClause(p query.Params, allowed map[string]bool) string {
	col := p.OrderBy
	if !allowed[col] {
		logger.L().Warn("invalid order_by field, falling back",
			logger.String("field", col),
			logger.String("fallback", query.DefaultOrderBy),
		)
		col = query.DefaultOrderBy
	}
	dir := "DESC"
	if p.OrderDirection == query.DirectionAsc {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// joinSet une las cláusulas SET de un partial update.
func joinSet(set []string) string {
	return strings.Join(set, ", ")
}

// buildPage arma las queries de count y de página para un listado.
// Ambas comparten el mismo WHERE; el count no lleva limit/offset para
// contar el total y no solo la página actual.
func buildPage(table, columns string, f query.Filter, p query.Params, allowed map[string]bool) (countSQL, pageSQL string, countArgs, pageArgs []any) {
	where, countArgs := buildWhere(f, allowed)

	countSQL = "SELECT COUNT(*) FROM " + table + where

	n := len(countArgs)
	pageSQL = "SELECT " + columns + " FROM " + table + where +
		orderClause(p, allowed) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	pageArgs = append(append([]any{}, countArgs...), p.PerPage, p.Offset())

	return countSQL, pageSQL, countArgs, pageArgs
}
