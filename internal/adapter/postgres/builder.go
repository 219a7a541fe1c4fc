package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ILike builds a case-insensitive substring match on any of the columns.
// Wildcards in term are escaped.
func ILike(term string, columns ...string) squirrel.Or {
	pattern := "%" + escapeLike(term) + "%"
	or := make(squirrel.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, squirrel.ILike{c: pattern})
	}
	return or
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
