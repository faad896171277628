package postgres

import (
	"fmt"
	"strings"

	"github.com/estately/realty-api/internal/core/ports"
)

// orderColumns whitelists the sortable columns. Anything else falls back to
// the default ordering, most-recently-created first.
var orderColumns = map[string]string{
	"price":      "price",
	"size":       "size",
	"created_at": "created_at",
}

const defaultOrder = "created_at DESC, id DESC"

// buildListingWhere translates the filter contract into a WHERE clause and
// positional args. All supplied filters combine with AND; zero values are
// skipped entirely.
func buildListingWhere(f ports.ListListingsFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}
	if f.MinSize != nil {
		add("size >= $%d", *f.MinSize)
	}
	if f.MaxSize != nil {
		add("size <= $%d", *f.MaxSize)
	}
	if f.PropertyType != "" {
		add("property_type = $%d", f.PropertyType)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.City != "" {
		add("city = $%d", f.City)
	}
	if f.CityContains != "" {
		add("city ILIKE $%d", "%"+escapeLike(f.CityContains)+"%")
	}
	if f.State != "" {
		add("state = $%d", f.State)
	}
	if f.ZipCode != "" {
		add("zip_code = $%d", f.ZipCode)
	}
	if f.OwnerID != 0 {
		add("created_by = $%d", f.OwnerID)
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR address ILIKE $%d)", n, n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildListingOrder maps the ordering parameter ("price", "-price", ...) to
// a safe ORDER BY clause. Unknown values get the default ordering.
func buildListingOrder(ordering string) string {
	dir := "ASC"
	col := ordering
	if strings.HasPrefix(ordering, "-") {
		dir = "DESC"
		col = ordering[1:]
	}
	column, ok := orderColumns[col]
	if !ok {
		return " ORDER BY " + defaultOrder
	}
	return fmt.Sprintf(" ORDER BY %s %s, id DESC", column, dir)
}

// escapeLike escapes LIKE wildcards in user-supplied terms.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
