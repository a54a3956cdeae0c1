package services

import (
	"context"
	"fmt"
	"log"

	"microdata/internal/repositories"
	"microdata/internal/schema"
)

// Backend is the storage capability a descriptor is materialized against.
type Backend interface {
	ListTables(ctx context.Context, connection string) ([]string, error)
	CreateTable(ctx context.Context, desc *schema.Descriptor) error
	DropTable(ctx context.Context, desc *schema.Descriptor) error
	Execute(ctx context.Context, ddl string, opts repositories.ExecOptions) error
}

type Status int

const (
	StatusPending Status = iota
	StatusCreated
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// BackendError reports a failed storage operation for a table.
type BackendError struct {
	Table string
	Op    string
	Err   error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s table %q failed: %v", e.Op, e.Table, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

type Result struct {
	Status Status `json:"status"`
	Table  string `json:"table"`
	Err    error  `json:"-"`
}

// TableSet is a snapshot of the table names present on a connection.
type TableSet map[string]struct{}

func NewTableSet(names []string) TableSet {
	set := make(TableSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (s TableSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func TableExists(desc *schema.Descriptor, existing TableSet) bool {
	return existing.Has(desc.Table)
}

type Materializer struct {
	backend Backend
}

func NewMaterializer(backend Backend) *Materializer {
	return &Materializer{backend: backend}
}

// Apply creates the table for desc. An existing table is dropped and
// recreated only when overwriteConfirmed is set; otherwise it is left alone.
// The first failing backend call ends the attempt.
func (m *Materializer) Apply(ctx context.Context, desc *schema.Descriptor, existing TableSet, overwriteConfirmed bool) Result {
	if TableExists(desc, existing) {
		if !overwriteConfirmed {
			return Result{Status: StatusSkipped, Table: desc.Table}
		}
		if err := m.backend.DropTable(ctx, desc); err != nil {
			return failed(desc.Table, "drop", err)
		}
		log.Printf("Dropped table %q on %s", desc.Table, desc.Connection)
	}

	if err := m.backend.CreateTable(ctx, desc); err != nil {
		return failed(desc.Table, "create", err)
	}
	log.Printf("Created table %q on %s", desc.Table, desc.Connection)
	return Result{Status: StatusCreated, Table: desc.Table}
}

// Run snapshots the existing tables and applies desc. confirm is consulted
// only when the table already exists.
func (m *Materializer) Run(ctx context.Context, desc *schema.Descriptor, confirm func(table string) bool) Result {
	existing, err := m.ExistingTables(ctx, desc.Connection)
	if err != nil {
		return failed(desc.Table, "list", err)
	}

	overwrite := false
	if TableExists(desc, existing) && confirm != nil {
		overwrite = confirm(desc.Table)
	}
	return m.Apply(ctx, desc, existing, overwrite)
}

func (m *Materializer) ExistingTables(ctx context.Context, connection string) (TableSet, error) {
	names, err := m.backend.ListTables(ctx, connection)
	if err != nil {
		return nil, err
	}
	return NewTableSet(names), nil
}

func failed(table, op string, err error) Result {
	return Result{
		Status: StatusFailed,
		Table:  table,
		Err:    &BackendError{Table: table, Op: op, Err: err},
	}
}
