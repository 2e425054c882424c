package listing

import "strings"

// Filter accumulates a conjunction of parameterized predicates. Conditions
// are added through typed helpers and rendered once, keeping every value a
// bind parameter.
type Filter struct {
	clauses []string
	args    []any
}

// Equals adds `column = ?`.
func (f *Filter) Equals(column string, value any) *Filter {
	f.clauses = append(f.clauses, column+" = ?")
	f.args = append(f.args, value)
	return f
}

// Search adds a case-insensitive substring match over one or more columns,
// OR-ed together.
func (f *Filter) Search(term string, columns ...string) *Filter {
	if term == "" || len(columns) == 0 {
		return f
	}
	like := "%" + term + "%"
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = col + " LIKE ?"
		f.args = append(f.args, like)
	}
	f.clauses = append(f.clauses, "("+strings.Join(parts, " OR ")+")")
	return f
}

// DateBetween adds `date(column) BETWEEN ? AND ?`. Open-ended ranges are
// ignored; both bounds are required.
func (f *Filter) DateBetween(column, from, to string) *Filter {
	if from == "" || to == "" {
		return f
	}
	f.clauses = append(f.clauses, "date("+column+") BETWEEN ? AND ?")
	f.args = append(f.args, from, to)
	return f
}

// Raw adds a preformed predicate with its bind arguments.
func (f *Filter) Raw(clause string, args ...any) *Filter {
	f.clauses = append(f.clauses, clause)
	f.args = append(f.args, args...)
	return f
}

// Clause renders the accumulated predicates as a WHERE fragment (with leading
// space) and the bind arguments. An empty filter renders to nothing.
func (f *Filter) Clause() (string, []any) {
	if len(f.clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(f.clauses, " AND "), f.args
}
