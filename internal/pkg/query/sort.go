package query

import "strings"

type Sort struct {
	Column string
	Desc   bool
}

func Desc(column string) Sort { return Sort{Column: column, Desc: true} }
func Asc(column string) Sort  { return Sort{Column: column} }

// OrderBy renders "ORDER BY a DESC, b ASC". Columns come from code, never
// from request input.
func OrderBy(sorts ...Sort) string {
	if len(sorts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(sorts))
	for _, s := range sorts {
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		parts = append(parts, s.Column+" "+dir)
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}
