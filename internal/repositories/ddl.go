package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"microdata/internal/schema"
)

// ExecOptions controls how a raw DDL statement is executed.
type ExecOptions struct {
	Log bool
}

const defaultStringLength = 255

func quoteIdent(parts ...string) string {
	return pgx.Identifier(parts).Sanitize()
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func tableIdent(pgSchema, table string) string {
	if pgSchema == "" {
		return quoteIdent(table)
	}
	return quoteIdent(pgSchema, table)
}

// CreateTableStatements renders the PostgreSQL statements that create the
// table described by desc, followed by one COMMENT ON COLUMN per commented
// column.
func CreateTableStatements(pgSchema string, desc *schema.Descriptor) ([]string, error) {
	if desc.Fields.Len() == 0 {
		return nil, fmt.Errorf("table %q has no columns", desc.Table)
	}

	table := tableIdent(pgSchema, desc.Table)
	fields := desc.Fields.Fields()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("CREATE TABLE %s (\n", table))
	for i, f := range fields {
		def, err := columnDefinition(f.Name, f.Spec)
		if err != nil {
			return nil, err
		}
		sb.WriteString("  " + def)
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(")")

	statements := []string{sb.String()}
	for _, f := range fields {
		if f.Spec.Comment == "" {
			continue
		}
		statements = append(statements, fmt.Sprintf("COMMENT ON COLUMN %s.%s IS %s",
			table, quoteIdent(f.Name), quoteLiteral(f.Spec.Comment)))
	}
	return statements, nil
}

func DropTableStatement(pgSchema string, desc *schema.Descriptor) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", tableIdent(pgSchema, desc.Table))
}

func columnDefinition(name string, spec schema.ColumnSpec) (string, error) {
	if spec.IsPrimary() {
		if spec.Type != schema.TypeInteger {
			return "", fmt.Errorf("column %q: unsupported primary key type %s", name, spec.Type)
		}
		return quoteIdent(name) + " SERIAL PRIMARY KEY", nil
	}

	colType, err := columnType(spec)
	if err != nil {
		return "", fmt.Errorf("column %q: %w", name, err)
	}

	def := quoteIdent(name) + " " + colType
	if !spec.Null {
		def += " NOT NULL"
	}
	if spec.HasDefault() {
		lit, err := defaultLiteral(spec.Default)
		if err != nil {
			return "", fmt.Errorf("column %q: %w", name, err)
		}
		def += " DEFAULT " + lit
	}
	return def, nil
}

func columnType(spec schema.ColumnSpec) (string, error) {
	switch spec.Type {
	case schema.TypeInteger:
		return "INTEGER", nil
	case schema.TypeString:
		if spec.Length != "" {
			return fmt.Sprintf("VARCHAR(%s)", spec.Length), nil
		}
		return fmt.Sprintf("VARCHAR(%d)", defaultStringLength), nil
	case schema.TypeDate:
		return "DATE", nil
	case schema.TypeTime:
		return "TIME", nil
	case schema.TypeDateTime:
		return "TIMESTAMP", nil
	case schema.TypeBoolean:
		return "BOOLEAN", nil
	case schema.TypeFloat:
		if spec.Length != "" {
			return fmt.Sprintf("NUMERIC(%s)", spec.Length), nil
		}
		return "DOUBLE PRECISION", nil
	}
	return "", fmt.Errorf("unsupported column type %q", spec.Type)
}

func defaultLiteral(v any) (string, error) {
	switch d := v.(type) {
	case string:
		return quoteLiteral(d), nil
	case bool:
		if d {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.Itoa(d), nil
	case int64:
		return strconv.FormatInt(d, 10), nil
	case float64:
		return strconv.FormatFloat(d, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported default value %v (%T)", v, v)
}
