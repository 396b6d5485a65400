package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const walletColumns = `w.id, w.name, w.owner_id, w.currency_id, c.code, w.balance, w.created_at`

func (r *Repository) FindByOwner(ctx context.Context, ownerID int) ([]domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets w
        JOIN currencies c ON c.id = w.currency_id
        WHERE w.owner_id = $1
        ORDER BY w.created_at
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't get wallets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var w domain.Wallet
		err := rows.Scan(&w.ID, &w.Name, &w.OwnerID, &w.CurrencyID, &w.CurrencyCode, &w.Balance, &w.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

func (r *Repository) FindByOwnerAndID(ctx context.Context, ownerID, walletID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets w
        JOIN currencies c ON c.id = w.currency_id
        WHERE w.owner_id = $1 AND w.id = $2
    `
	return r.findOne(ctx, query, ownerID, walletID)
}

func (r *Repository) FindByOwnerAndCurrency(ctx context.Context, ownerID, currencyID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets w
        JOIN currencies c ON c.id = w.currency_id
        WHERE w.owner_id = $1 AND w.currency_id = $2
    `
	return r.findOne(ctx, query, ownerID, currencyID)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&w.ID, &w.Name, &w.OwnerID, &w.CurrencyID, &w.CurrencyCode, &w.Balance, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find wallet", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) NameTaken(ctx context.Context, ownerID int, name string, excludeID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM wallets
            WHERE owner_id = $1 AND name = $2 AND id <> $3
        )
    `
	var taken bool
	if err := r.db.QueryRow(ctx, query, ownerID, name, excludeID).Scan(&taken); err != nil {
		zap.L().Error("can't check wallet name", zap.Error(err))
		return false, err
	}
	return taken, nil
}

func (r *Repository) Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (name, owner_id, currency_id, balance)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, wallet.Name, wallet.OwnerID, wallet.CurrencyID, wallet.Balance).
		Scan(&wallet.ID, &wallet.CreatedAt)
	if err != nil {
		zap.L().Error("can't save wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) Rename(ctx context.Context, walletID int, name string) error {
	_, err := r.db.Exec(ctx, `UPDATE wallets SET name = $1 WHERE id = $2`, name, walletID)
	if err != nil {
		zap.L().Error("can't rename wallet", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, walletID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM wallets WHERE id = $1`, walletID)
	if err != nil {
		zap.L().Error("can't delete wallet", zap.Error(err))
		return err
	}
	return nil
}

// Debit subtracts amount from the wallet balance in a single conditional
// update. It reports false when the balance does not cover the amount, so
// concurrent debits can never drive a balance below zero.
func (r *Repository) Debit(ctx context.Context, walletID int, amount decimal.Decimal) (bool, error) {
	query := `
        UPDATE wallets
        SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, walletID)
	if err != nil {
		zap.L().Error("can't debit wallet", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Credit(ctx context.Context, walletID int, amount decimal.Decimal) error {
	query := `
        UPDATE wallets
        SET balance = balance + $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, amount, walletID)
	if err != nil {
		zap.L().Error("can't credit wallet", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
