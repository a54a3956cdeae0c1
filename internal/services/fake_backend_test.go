package services

import (
	"context"

	"microdata/internal/repositories"
	"microdata/internal/schema"
	"microdata/internal/vocabulary"
)

type fakeBackend struct {
	tables    []string
	listErr   error
	createErr error
	dropErr   error
	calls     []string
}

func (b *fakeBackend) ListTables(ctx context.Context, connection string) ([]string, error) {
	b.calls = append(b.calls, "list:"+connection)
	return b.tables, b.listErr
}

func (b *fakeBackend) CreateTable(ctx context.Context, desc *schema.Descriptor) error {
	b.calls = append(b.calls, "create:"+desc.Table)
	return b.createErr
}

func (b *fakeBackend) DropTable(ctx context.Context, desc *schema.Descriptor) error {
	b.calls = append(b.calls, "drop:"+desc.Table)
	return b.dropErr
}

func (b *fakeBackend) Execute(ctx context.Context, ddl string, opts repositories.ExecOptions) error {
	b.calls = append(b.calls, "exec")
	return nil
}

func testVocabulary() *vocabulary.Document {
	return &vocabulary.Document{
		Datatypes: map[string]vocabulary.Datatype{
			"Text": {Label: "Text"},
			"Date": {Label: "Date"},
		},
		Properties: map[string]vocabulary.Property{
			"name":      {Ranges: []string{"Text"}},
			"birthDate": {Ranges: []string{"Date"}},
			"worksFor":  {Ranges: []string{"Organization", "Person"}},
		},
		Types: map[string]vocabulary.Type{
			"Person":       {Properties: []string{"name", "birthDate", "worksFor"}},
			"Organization": {Properties: []string{"name"}},
		},
	}
}

func personDescriptor() *schema.Descriptor {
	desc, err := schema.Build(testVocabulary(), "Person", "people", "default")
	if err != nil {
		panic(err)
	}
	return desc
}
