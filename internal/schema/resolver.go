package schema

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFieldKind = errors.New("unknown field kind")

// Vocabulary is the read-only view the resolver works against.
// *vocabulary.Document implements it.
type Vocabulary interface {
	IsDatatype(id string) bool
	DatatypeLabel(id string) (string, error)
	PropertyRanges(name string) ([]string, error)
	TypeProperties(name string) ([]string, error)
}

// ResolveField returns the column name and spec for one property.
// A property with a single datatype range becomes a primitive column;
// anything else becomes an integer foreign-key placeholder whose comment
// lists the ranges.
func ResolveField(v Vocabulary, property string) (string, ColumnSpec, error) {
	ranges, err := v.PropertyRanges(property)
	if err != nil {
		return "", ColumnSpec{}, err
	}

	name := ColumnName(property)

	if len(ranges) == 1 && v.IsDatatype(ranges[0]) {
		label, err := v.DatatypeLabel(ranges[0])
		if err != nil {
			return "", ColumnSpec{}, err
		}
		kind, ok := LookupKind(label)
		if !ok {
			return "", ColumnSpec{}, fmt.Errorf("%w: datatype %q (label %q) of property %q", ErrUnknownFieldKind, ranges[0], label, property)
		}
		return name, SpecFor(kind), nil
	}

	spec := SpecFor(KindForeignKey)
	spec.Comment = strings.Join(ranges, ", ")
	return name, spec, nil
}
