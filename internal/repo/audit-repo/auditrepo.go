package auditrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/viwallet/viwallet/internal/pg"
)

// Repository appends entries to the audit log. Entries are written by the
// services at each state-changing operation, never derived from persistence
// internals.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Record(ctx context.Context, tableName, operation string) error {
	query := `
        INSERT INTO audit_log (table_name, operation)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, tableName, operation)
	if err != nil {
		zap.L().Error("can't record audit entry", zap.Error(err))
		return err
	}
	return nil
}
