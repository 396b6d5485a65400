package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

var txRowColumns = []string{
	"id", "sender_id", "receiver_id", "currency_id", "code", "amount",
	"transaction_date", "reverted", "reverted_by", "reverted_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	sentAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("50.00")

	tests := []struct {
		name      string
		tx        *domain.Transaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create transaction successfully",
			tx: &domain.Transaction{
				SenderID:        1,
				ReceiverID:      2,
				CurrencyID:      1,
				Amount:          amount,
				TransactionDate: sentAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (sender_id, receiver_id, currency_id, amount, transaction_date)`)).
					WithArgs(1, 2, 1, amount, sentAt).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
		},
		{
			name: "Database error",
			tx: &domain.Transaction{
				SenderID:        1,
				ReceiverID:      2,
				CurrencyID:      1,
				Amount:          amount,
				TransactionDate: sentAt,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions (sender_id, receiver_id, currency_id, amount, transaction_date)`)).
					WithArgs(1, 2, 1, amount, sentAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.tx)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, result.ID)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	sentAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("50.00")

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Transaction
	}{
		{
			name: "Transaction found",
			id:   11,
			mockSetup: func() {
				rows := pgxmock.NewRows(txRowColumns).
					AddRow(11, 1, 2, 1, "EUR", amount, sentAt, false, nil, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.id = $1`)).
					WithArgs(11).
					WillReturnRows(rows)
			},
			result: &domain.Transaction{
				ID:              11,
				SenderID:        1,
				ReceiverID:      2,
				CurrencyID:      1,
				CurrencyCode:    "EUR",
				Amount:          amount,
				TransactionDate: sentAt,
				Reverted:        false,
			},
		},
		{
			name: "Transaction not found",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   11,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.id = $1`)).
					WithArgs(11).
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

func TestRepository_MarkReverted(t *testing.T) {
	repo, mock := NewMock(t)
	revertedAt := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Marked reverted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $3 AND NOT reverted`)).
					WithArgs(7, revertedAt, 11).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			result: true,
		},
		{
			name: "Already reverted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $3 AND NOT reverted`)).
					WithArgs(7, revertedAt, 11).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			result: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $3 AND NOT reverted`)).
					WithArgs(7, revertedAt, 11).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.MarkReverted(context.Background(), 11, 7, revertedAt)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, ok)
			}
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	sentAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("50.00")
	revertedBy := 7
	revertedAt := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.Transaction
	}{
		{
			name:   "Transactions listed",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows(txRowColumns).
					AddRow(12, 2, 1, 1, "EUR", amount, sentAt.Add(time.Hour), true, &revertedBy, &revertedAt).
					AddRow(11, 1, 2, 1, "EUR", amount, sentAt, false, nil, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.sender_id = $1 OR t.receiver_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: []domain.Transaction{
				{ID: 12, SenderID: 2, ReceiverID: 1, CurrencyID: 1, CurrencyCode: "EUR", Amount: amount, TransactionDate: sentAt.Add(time.Hour), Reverted: true, RevertedBy: &revertedBy, RevertedAt: &revertedAt},
				{ID: 11, SenderID: 1, ReceiverID: 2, CurrencyID: 1, CurrencyCode: "EUR", Amount: amount, TransactionDate: sentAt, Reverted: false},
			},
		},
		{
			name:   "No transactions",
			userID: 3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.sender_id = $1 OR t.receiver_id = $1`)).
					WithArgs(3).
					WillReturnRows(pgxmock.NewRows(txRowColumns))
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.sender_id = $1 OR t.receiver_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUser(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_ListAll(t *testing.T) {
	sentAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("50.00")

	t.Run("Page and total fetched", func(t *testing.T) {
		repo, mock := NewMock(t)
		// The count and the page run concurrently.
		mock.MatchExpectationsInOrder(false)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM transactions`)).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))
		rows := pgxmock.NewRows(txRowColumns).
			AddRow(11, 1, 2, 1, "EUR", amount, sentAt, false, nil, nil)
		mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
			WithArgs(20, 0).
			WillReturnRows(rows)

		transactions, total, err := repo.ListAll(context.Background(), 20, 0)
		assert.NoError(t, err)
		assert.Equal(t, 42, total)
		assert.Equal(t, []domain.Transaction{
			{ID: 11, SenderID: 1, ReceiverID: 2, CurrencyID: 1, CurrencyCode: "EUR", Amount: amount, TransactionDate: sentAt, Reverted: false},
		}, transactions)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.MatchExpectationsInOrder(false)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM transactions`)).
			WillReturnError(errors.New("database error"))
		mock.ExpectQuery(regexp.QuoteMeta(`LIMIT $1 OFFSET $2`)).
			WithArgs(20, 0).
			WillReturnRows(pgxmock.NewRows(txRowColumns))

		_, _, err := repo.ListAll(context.Background(), 20, 0)
		assert.Error(t, err)
	})
}
