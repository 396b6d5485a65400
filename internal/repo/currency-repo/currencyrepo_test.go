package currencyrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/viwallet/viwallet/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var currencyColumns = []string{"id", "code", "name", "exchange_rate"}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Currency
	}{
		{
			name: "Currencies listed",
			mockSetup: func() {
				rows := pgxmock.NewRows(currencyColumns).
					AddRow(4, "BGN", "Bulgarian Lev", decimal.RequireFromString("1.96")).
					AddRow(1, "EUR", "Euro", decimal.RequireFromString("1"))
				mock.ExpectQuery(`SELECT id, code, name, exchange_rate`).
					WillReturnRows(rows)
			},
			result: []domain.Currency{
				{ID: 4, Code: "BGN", Name: "Bulgarian Lev", ExchangeRate: decimal.RequireFromString("1.96")},
				{ID: 1, Code: "EUR", Name: "Euro", ExchangeRate: decimal.RequireFromString("1")},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT id, code, name, exchange_rate`).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Currency
	}{
		{
			name: "Currency found",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows(currencyColumns).
					AddRow(1, "EUR", "Euro", decimal.RequireFromString("1"))
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Currency{ID: 1, Code: "EUR", Name: "Euro", ExchangeRate: decimal.RequireFromString("1")},
		},
		{
			name: "Currency not found",
			id:   42,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
					WithArgs(42).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByCode(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		expectErr bool
		result    *domain.Currency
	}{
		{
			name: "Currency found",
			code: "USD",
			mockSetup: func() {
				rows := pgxmock.NewRows(currencyColumns).
					AddRow(2, "USD", "US Dollar", decimal.RequireFromString("1.08"))
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE code = $1`)).
					WithArgs("USD").
					WillReturnRows(rows)
			},
			result: &domain.Currency{ID: 2, Code: "USD", Name: "US Dollar", ExchangeRate: decimal.RequireFromString("1.08")},
		},
		{
			name: "Currency not found",
			code: "JPY",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE code = $1`)).
					WithArgs("JPY").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByCode(context.Background(), tt.code)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
