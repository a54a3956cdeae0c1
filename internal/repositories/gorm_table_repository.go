package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"microdata/internal/schema"
)

// GormTableRepository is the gorm-backed equivalent of TableRepository.
// Tables are listed through the gorm migrator for the connection's
// current schema.
type GormTableRepository struct {
	db         *gorm.DB
	connection string
}

func NewGormTableRepository(db *gorm.DB, connection string) *GormTableRepository {
	return &GormTableRepository{db: db, connection: connection}
}

func (r *GormTableRepository) checkConnection(connection string) error {
	if connection != "" && connection != r.connection {
		return fmt.Errorf("unknown connection %q", connection)
	}
	return nil
}

func (r *GormTableRepository) ListTables(ctx context.Context, connection string) ([]string, error) {
	if err := r.checkConnection(connection); err != nil {
		return nil, err
	}
	tables, err := r.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

func (r *GormTableRepository) CreateTable(ctx context.Context, desc *schema.Descriptor) error {
	if err := r.checkConnection(desc.Connection); err != nil {
		return err
	}
	statements, err := CreateTableStatements("", desc)
	if err != nil {
		return err
	}
	return r.inTx(ctx, statements)
}

func (r *GormTableRepository) DropTable(ctx context.Context, desc *schema.Descriptor) error {
	if err := r.checkConnection(desc.Connection); err != nil {
		return err
	}
	return r.inTx(ctx, []string{DropTableStatement("", desc)})
}

func (r *GormTableRepository) Execute(ctx context.Context, ddl string, opts ExecOptions) error {
	return execute(ctx, gormExec(r.db), ddl, opts)
}

func (r *GormTableRepository) inTx(ctx context.Context, statements []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return executeAll(ctx, gormExec(tx), statements, ExecOptions{})
	})
}

func gormExec(db *gorm.DB) execFunc {
	return func(ctx context.Context, stmt string) error {
		return db.WithContext(ctx).Exec(stmt).Error
	}
}
