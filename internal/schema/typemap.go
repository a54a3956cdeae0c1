package schema

import "fmt"

// DataType is the storage-side column type.
type DataType string

const (
	TypeInteger  DataType = "integer"
	TypeString   DataType = "string"
	TypeDate     DataType = "date"
	TypeTime     DataType = "time"
	TypeDateTime DataType = "datetime"
	TypeBoolean  DataType = "boolean"
	TypeFloat    DataType = "float"
)

type KeyRole string

const KeyPrimary KeyRole = "primary"

// Kind is the closed set of field kinds a column can be mapped from.
// Vocabulary datatype labels resolve to one of these by name.
type Kind int

const (
	KindPrimary Kind = iota
	KindForeignKey
	KindText
	KindURL
	KindDate
	KindTime
	KindDateTime
	KindBoolean
	KindInteger
	KindFloat
)

var kindNames = [...]string{
	KindPrimary:    "Primary",
	KindForeignKey: "ForeignKey",
	KindText:       "Text",
	KindURL:        "URL",
	KindDate:       "Date",
	KindTime:       "Time",
	KindDateTime:   "DateTime",
	KindBoolean:    "Boolean",
	KindInteger:    "Integer",
	KindFloat:      "Float",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// LookupKind maps a vocabulary datatype label to its Kind.
func LookupKind(label string) (Kind, bool) {
	k, ok := kindsByName[label]
	return k, ok
}

// ColumnSpec describes one column of a generated table.
type ColumnSpec struct {
	Kind    Kind     `json:"kind"`
	Type    DataType `json:"type"`
	Default any      `json:"default,omitempty"`
	Null    bool     `json:"null"`
	Key     KeyRole  `json:"key,omitempty"`
	Length  string   `json:"length,omitempty"`
	Comment string   `json:"comment,omitempty"`
}

func (c ColumnSpec) IsForeignKey() bool {
	return c.Kind == KindForeignKey
}

func (c ColumnSpec) IsPrimary() bool {
	return c.Key == KeyPrimary
}

func (c ColumnSpec) HasDefault() bool {
	return c.Default != nil
}

// SpecFor returns the column template for a kind. Adding a vocabulary
// datatype means adding a Kind and a case here.
func SpecFor(k Kind) ColumnSpec {
	switch k {
	case KindPrimary:
		return ColumnSpec{Kind: k, Type: TypeInteger, Key: KeyPrimary}
	case KindForeignKey:
		return ColumnSpec{Kind: k, Type: TypeInteger, Null: true}
	case KindText, KindURL:
		return ColumnSpec{Kind: k, Type: TypeString, Default: ""}
	case KindDate:
		return ColumnSpec{Kind: k, Type: TypeDate, Null: true}
	case KindTime:
		return ColumnSpec{Kind: k, Type: TypeTime, Null: true}
	case KindDateTime:
		return ColumnSpec{Kind: k, Type: TypeDateTime, Null: true}
	case KindBoolean:
		return ColumnSpec{Kind: k, Type: TypeBoolean, Default: false}
	case KindInteger:
		return ColumnSpec{Kind: k, Type: TypeInteger, Default: 0}
	case KindFloat:
		return ColumnSpec{Kind: k, Type: TypeFloat, Length: "5,2", Default: 0}
	}
	panic(fmt.Sprintf("schema: no column template for %s", k))
}
