package transactionrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const txColumns = `t.id, t.sender_id, t.receiver_id, t.currency_id, c.code, t.amount,
       t.transaction_date, t.reverted, t.reverted_by, t.reverted_at`

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (sender_id, receiver_id, currency_id, amount, transaction_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, tx.SenderID, tx.ReceiverID, tx.CurrencyID, tx.Amount, tx.TransactionDate).
		Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions t
        JOIN currencies c ON c.id = t.currency_id
        WHERE t.id = $1
    `
	var tx domain.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tx.ID, &tx.SenderID, &tx.ReceiverID, &tx.CurrencyID, &tx.CurrencyCode,
		&tx.Amount, &tx.TransactionDate, &tx.Reverted, &tx.RevertedBy, &tx.RevertedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

// MarkReverted flips the reverted flag in a single conditional update and
// reports false when the transaction was already reverted.
func (r *Repository) MarkReverted(ctx context.Context, id, revertedBy int, revertedAt time.Time) (bool, error) {
	query := `
        UPDATE transactions
        SET reverted = TRUE, reverted_by = $1, reverted_at = $2
        WHERE id = $3 AND NOT reverted
    `
	tag, err := r.db.Exec(ctx, query, revertedBy, revertedAt, id)
	if err != nil {
		zap.L().Error("can't mark transaction reverted", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions t
        JOIN currencies c ON c.id = t.currency_id
        WHERE t.sender_id = $1 OR t.receiver_id = $1
        ORDER BY t.transaction_date DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListAll returns one page of all transactions, newest first, plus the total
// count. The count and the page are fetched concurrently.
func (r *Repository) ListAll(ctx context.Context, limit, offset int) ([]domain.Transaction, int, error) {
	var (
		transactions []domain.Transaction
		total        int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.QueryRow(gCtx, `SELECT COUNT(*) FROM transactions`).Scan(&total)
	})
	g.Go(func() error {
		query := `
        SELECT ` + txColumns + `
        FROM transactions t
        JOIN currencies c ON c.id = t.currency_id
        ORDER BY t.transaction_date DESC
        LIMIT $1 OFFSET $2
    `
		rows, err := r.db.Query(gCtx, query, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		transactions, err = scanTransactions(rows)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't list all transactions", zap.Error(err))
		return nil, 0, err
	}
	return transactions, total, nil
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(
			&tx.ID, &tx.SenderID, &tx.ReceiverID, &tx.CurrencyID, &tx.CurrencyCode,
			&tx.Amount, &tx.TransactionDate, &tx.Reverted, &tx.RevertedBy, &tx.RevertedAt,
		)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
