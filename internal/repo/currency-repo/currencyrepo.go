package currencyrepo

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

func (r *Repository) List(ctx context.Context) ([]domain.Currency, error) {
	query := `
        SELECT id, code, name, exchange_rate
        FROM currencies
        ORDER BY code
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list currencies", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var c domain.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.ExchangeRate); err != nil {
			zap.L().Error("can't scan currency row", zap.Error(err))
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Currency, error) {
	query := `
        SELECT id, code, name, exchange_rate
        FROM currencies
        WHERE id = $1
    `
	var c domain.Currency
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name, &c.ExchangeRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find currency", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
        SELECT id, code, name, exchange_rate
        FROM currencies
        WHERE code = $1
    `
	var c domain.Currency
	err := r.db.QueryRow(ctx, query, code).Scan(&c.ID, &c.Code, &c.Name, &c.ExchangeRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find currency by code", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
