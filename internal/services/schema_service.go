package services

import (
	"context"
	"sort"
	"sync"

	"microdata/internal/schema"
	"microdata/internal/vocabulary"
)

// SchemaService builds descriptors from the loaded vocabulary and
// materializes them one at a time.
type SchemaService struct {
	doc          *vocabulary.Document
	materializer *Materializer
	connection   string

	mu sync.Mutex
}

func NewSchemaService(doc *vocabulary.Document, materializer *Materializer, connection string) *SchemaService {
	return &SchemaService{
		doc:          doc,
		materializer: materializer,
		connection:   connection,
	}
}

func (s *SchemaService) Available() bool {
	return s.doc != nil
}

func (s *SchemaService) Connection() string {
	return s.connection
}

func (s *SchemaService) TypeNames() ([]string, error) {
	if s.doc == nil {
		return nil, vocabulary.ErrVocabularyUnavailable
	}
	return s.doc.TypeNames(), nil
}

// Preview builds the descriptor for typeName without touching storage.
// An empty table defaults to the tableized type name.
func (s *SchemaService) Preview(typeName, table string) (*schema.Descriptor, error) {
	if s.doc == nil {
		return nil, vocabulary.ErrVocabularyUnavailable
	}
	return schema.Build(s.doc, typeName, table, s.connection)
}

// Materialize builds and applies a descriptor. Build errors are returned
// as err; storage failures are reported in the Result.
func (s *SchemaService) Materialize(ctx context.Context, typeName, table string, overwrite bool) (*schema.Descriptor, Result, error) {
	desc, err := s.Preview(typeName, table)
	if err != nil {
		return nil, Result{}, err
	}
	return desc, s.Apply(ctx, desc, func(string) bool { return overwrite }), nil
}

// Apply materializes an already built descriptor.
func (s *SchemaService) Apply(ctx context.Context, desc *schema.Descriptor, confirm func(table string) bool) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.materializer.Run(ctx, desc, confirm)
}

func (s *SchemaService) ListTables(ctx context.Context) ([]string, error) {
	existing, err := s.materializer.ExistingTables(ctx, s.connection)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(existing))
	for name := range existing {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
