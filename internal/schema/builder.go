package schema

import "fmt"

const (
	PrimaryColumn = "id"
	CreatedColumn = "created"
	UpdatedColumn = "updated"
)

// Descriptor is a table schema ready to be materialized.
type Descriptor struct {
	Table      string   `json:"table"`
	Connection string   `json:"connection"`
	Fields     FieldMap `json:"fields"`
}

// BuildFields assembles the ordered field map for a vocabulary type: the
// primary key, one column per declared property, then the timestamps.
// Any error aborts the build and no field map is returned.
func BuildFields(v Vocabulary, typeName string) (FieldMap, error) {
	properties, err := v.TypeProperties(typeName)
	if err != nil {
		return FieldMap{}, err
	}

	var fields FieldMap
	if err := fields.Add(PrimaryColumn, SpecFor(KindPrimary)); err != nil {
		return FieldMap{}, err
	}

	for _, property := range properties {
		name, spec, err := ResolveField(v, property)
		if err != nil {
			return FieldMap{}, fmt.Errorf("type %q: %w", typeName, err)
		}
		if err := fields.Add(name, spec); err != nil {
			return FieldMap{}, fmt.Errorf("type %q property %q: %w", typeName, property, err)
		}
	}

	for _, name := range []string{CreatedColumn, UpdatedColumn} {
		if err := fields.Add(name, SpecFor(KindDateTime)); err != nil {
			return FieldMap{}, fmt.Errorf("type %q: %w", typeName, err)
		}
	}

	return fields, nil
}

func Build(v Vocabulary, typeName, table, connection string) (*Descriptor, error) {
	fields, err := BuildFields(v, typeName)
	if err != nil {
		return nil, err
	}
	if table == "" {
		table = TableName(typeName)
	}
	return &Descriptor{
		Table:      table,
		Connection: connection,
		Fields:     fields,
	}, nil
}
