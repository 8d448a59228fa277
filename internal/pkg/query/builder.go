package query

import (
	"fmt"
	"strings"
)

// Builder collects a filter predicate as parameterized SQL conditions.
// Conditions are joined with AND.
type Builder struct {
	conditions []string
	args       []interface{}
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Eq adds "column = value" only when value is non-empty.
func (b *Builder) Eq(column, value string) *Builder {
	if strings.TrimSpace(value) == "" {
		return b
	}
	b.args = append(b.args, value)
	b.conditions = append(b.conditions, fmt.Sprintf("%s = $%d", column, len(b.args)))
	return b
}

// Search adds a case-insensitive substring match OR-ed across columns.
// All columns share one placeholder.
func (b *Builder) Search(term string, columns ...string) *Builder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return b
	}
	b.args = append(b.args, "%"+EscapeLike(term)+"%")
	idx := len(b.args)

	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, idx))
	}
	b.conditions = append(b.conditions, "("+strings.Join(parts, " OR ")+")")
	return b
}

// Where renders "WHERE ..." or an empty string when no condition was added.
func (b *Builder) Where() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conditions, " AND ")
}

// Args returns a copy of the bound arguments in placeholder order.
func (b *Builder) Args() []interface{} {
	args := make([]interface{}, len(b.args))
	copy(args, b.args)
	return args
}

// Page renders "LIMIT $n OFFSET $n+1" and returns the arguments extended with
// limit and offset.
func (b *Builder) Page(p Pagination) (string, []interface{}) {
	args := append(b.Args(), p.Limit, p.Offset())
	n := len(b.args)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", n+1, n+2), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE metacharacters so the term is matched literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
