package repositories

import (
	"context"
	"fmt"
	"log"
)

// execFunc runs one statement on a pool, a connection or a transaction.
type execFunc func(ctx context.Context, stmt string) error

func execute(ctx context.Context, exec execFunc, ddl string, opts ExecOptions) error {
	if opts.Log {
		log.Printf("Executing: %s", ddl)
	}
	if err := exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

// executeAll stops at the first failing statement.
func executeAll(ctx context.Context, exec execFunc, statements []string, opts ExecOptions) error {
	for _, stmt := range statements {
		if err := execute(ctx, exec, stmt, opts); err != nil {
			return err
		}
	}
	return nil
}
