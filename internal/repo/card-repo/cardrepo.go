package cardrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Card, error) {
	query := `
        SELECT c.id, c.card_number, c.expiration_date, c.blocked, c.wallet_id, w.owner_id
        FROM cards c
        JOIN wallets w ON w.id = c.wallet_id
        WHERE c.id = $1
    `
	var card domain.Card
	err := r.db.QueryRow(ctx, query, id).
		Scan(&card.ID, &card.CardNumber, &card.ExpirationDate, &card.Blocked, &card.WalletID, &card.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find card", zap.Error(err))
		return nil, err
	}
	return &card, nil
}

func (r *Repository) NumberExists(ctx context.Context, cardNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cards WHERE card_number = $1)`, cardNumber).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check card number", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CountByWallet(ctx context.Context, walletID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cards WHERE wallet_id = $1`, walletID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count cards", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]domain.Card, error) {
	query := `
        SELECT c.id, c.card_number, c.expiration_date, c.blocked, c.wallet_id, w.owner_id
        FROM cards c
        JOIN wallets w ON w.id = c.wallet_id
        WHERE w.owner_id = $1
        ORDER BY c.id
    `
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't get cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var card domain.Card
		err := rows.Scan(&card.ID, &card.CardNumber, &card.ExpirationDate, &card.Blocked, &card.WalletID, &card.OwnerID)
		if err != nil {
			zap.L().Error("can't scan card row", zap.Error(err))
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (r *Repository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `
        INSERT INTO cards (card_number, expiration_date, wallet_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, card.CardNumber, card.ExpirationDate, card.WalletID).Scan(&card.ID)
	if err != nil {
		zap.L().Error("can't save card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

func (r *Repository) SetBlocked(ctx context.Context, id int, blocked bool) error {
	_, err := r.db.Exec(ctx, `UPDATE cards SET blocked = $1 WHERE id = $2`, blocked, id)
	if err != nil {
		zap.L().Error("can't update card block flag", zap.Error(err))
		return err
	}
	return nil
}
