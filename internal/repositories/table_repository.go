package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"microdata/internal/schema"
)

// TableRepository creates and drops generated tables through a pgx pool.
type TableRepository struct {
	pool       *pgxpool.Pool
	connection string
	schema     string
}

func NewTableRepository(pool *pgxpool.Pool, connection string, pgSchema string) *TableRepository {
	if pgSchema == "" {
		pgSchema = "public"
	}
	return &TableRepository{
		pool:       pool,
		connection: connection,
		schema:     pgSchema,
	}
}

func (r *TableRepository) checkConnection(connection string) error {
	if connection != "" && connection != r.connection {
		return fmt.Errorf("unknown connection %q", connection)
	}
	return nil
}

// ListTables returns all base table names in the repository's schema
func (r *TableRepository) ListTables(ctx context.Context, connection string) ([]string, error) {
	if err := r.checkConnection(connection); err != nil {
		return nil, err
	}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := r.pool.Query(ctx, query, r.schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}

func (r *TableRepository) CreateTable(ctx context.Context, desc *schema.Descriptor) error {
	if err := r.checkConnection(desc.Connection); err != nil {
		return err
	}
	statements, err := CreateTableStatements(r.schema, desc)
	if err != nil {
		return err
	}
	return r.inTx(ctx, statements)
}

func (r *TableRepository) DropTable(ctx context.Context, desc *schema.Descriptor) error {
	if err := r.checkConnection(desc.Connection); err != nil {
		return err
	}
	return r.inTx(ctx, []string{DropTableStatement(r.schema, desc)})
}

func (r *TableRepository) Execute(ctx context.Context, ddl string, opts ExecOptions) error {
	return execute(ctx, func(ctx context.Context, stmt string) error {
		_, err := r.pool.Exec(ctx, stmt)
		return err
	}, ddl, opts)
}

func (r *TableRepository) inTx(ctx context.Context, statements []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	exec := func(ctx context.Context, stmt string) error {
		_, err := tx.Exec(ctx, stmt)
		return err
	}
	if err := executeAll(ctx, exec, statements, ExecOptions{}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
