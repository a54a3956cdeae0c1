package vocabulary

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrVocabularyUnavailable = errors.New("vocabulary is not available")
	ErrLookup                = errors.New("vocabulary lookup failed")
)

type Datatype struct {
	ID      string `json:"id,omitempty"`
	Label   string `json:"label"`
	Comment string `json:"comment,omitempty"`
	URL     string `json:"url,omitempty"`
}

type Property struct {
	ID      string   `json:"id,omitempty"`
	Label   string   `json:"label,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Domains []string `json:"domains,omitempty"`
	Ranges  []string `json:"ranges"`
}

type Type struct {
	ID         string   `json:"id,omitempty"`
	Label      string   `json:"label,omitempty"`
	Comment    string   `json:"comment,omitempty"`
	URL        string   `json:"url,omitempty"`
	Ancestors  []string `json:"ancestors,omitempty"`
	Supertypes []string `json:"supertypes,omitempty"`
	Properties []string `json:"properties"`
}

// Document is the decoded vocabulary. It is read-only once loaded.
type Document struct {
	Datatypes  map[string]Datatype `json:"datatypes"`
	Properties map[string]Property `json:"properties"`
	Types      map[string]Type     `json:"types"`
}

func lookupError(kind, id string) error {
	return fmt.Errorf("%w: %s %q not found", ErrLookup, kind, id)
}

// IsDatatype reports whether id names a declared datatype.
func (d *Document) IsDatatype(id string) bool {
	if d == nil {
		return false
	}
	_, ok := d.Datatypes[id]
	return ok
}

func (d *Document) DatatypeLabel(id string) (string, error) {
	if d == nil {
		return "", ErrVocabularyUnavailable
	}
	dt, ok := d.Datatypes[id]
	if !ok {
		return "", lookupError("datatype", id)
	}
	return dt.Label, nil
}

func (d *Document) PropertyRanges(name string) ([]string, error) {
	if d == nil {
		return nil, ErrVocabularyUnavailable
	}
	p, ok := d.Properties[name]
	if !ok {
		return nil, lookupError("property", name)
	}
	return p.Ranges, nil
}

func (d *Document) TypeProperties(name string) ([]string, error) {
	if d == nil {
		return nil, ErrVocabularyUnavailable
	}
	t, ok := d.Types[name]
	if !ok {
		return nil, lookupError("type", name)
	}
	return t.Properties, nil
}

// TypeNames returns the declared type names in lexical order.
func (d *Document) TypeNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Types))
	for name := range d.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
