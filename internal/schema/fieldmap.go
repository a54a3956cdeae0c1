package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDuplicateColumn = errors.New("duplicate column")

type Field struct {
	Name string
	Spec ColumnSpec
}

// FieldMap is an ordered set of named columns.
type FieldMap struct {
	fields []Field
	index  map[string]int
}

// Add appends a column. A name already present is rejected with
// ErrDuplicateColumn and the map is left unchanged.
func (m *FieldMap) Add(name string, spec ColumnSpec) error {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, exists := m.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	m.index[name] = len(m.fields)
	m.fields = append(m.fields, Field{Name: name, Spec: spec})
	return nil
}

func (m *FieldMap) Get(name string) (ColumnSpec, bool) {
	i, ok := m.index[name]
	if !ok {
		return ColumnSpec{}, false
	}
	return m.fields[i].Spec, true
}

func (m *FieldMap) Len() int {
	return len(m.fields)
}

// Fields returns the columns in order. The slice is a copy.
func (m *FieldMap) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

func (m *FieldMap) Names() []string {
	names := make([]string, len(m.fields))
	for i, f := range m.fields {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON encodes the map as a JSON object with keys in column order.
func (m FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range m.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Spec)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
