package schema

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

var acronyms = strings.NewReplacer("ID", "Id", "POS", "Pos")

// ColumnName converts a vocabulary property name to a column name,
// e.g. "worksFor" -> "works_for", "productID" -> "product_id".
// Other runs of capitals are split per letter: "embedURL" -> "embed_u_r_l".
func ColumnName(property string) string {
	return underscore(acronyms.Replace(strings.TrimSpace(property)))
}

// TableName is the default table name for a vocabulary type,
// e.g. "Person" -> "people", "LocalBusiness" -> "local_businesses".
func TableName(typeName string) string {
	name := underscore(strings.TrimSpace(typeName))
	if name == "" {
		return name
	}
	parts := strings.Split(name, "_")
	parts[len(parts)-1] = inflection.Plural(parts[len(parts)-1])
	return strings.Join(parts, "_")
}

func underscore(s string) string {
	out := make([]rune, 0, len(s)+4)
	var prev rune
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && isWordRune(prev) {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, r)
		}
		prev = r
	}
	return string(out)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
