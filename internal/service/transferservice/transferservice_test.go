package transferservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/pg"
)

type mocks struct {
	walletRepo   *MockWalletRepo
	userRepo     *MockUserRepo
	currencyRepo *MockCurrencyRepo
	txRepo       *MockTransactionRepo
	auditRepo    *MockAuditRepo
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		walletRepo:   NewMockWalletRepo(ctrl),
		userRepo:     NewMockUserRepo(ctrl),
		currencyRepo: NewMockCurrencyRepo(ctrl),
		txRepo:       NewMockTransactionRepo(ctrl),
		auditRepo:    NewMockAuditRepo(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	service := New(m.walletRepo, m.userRepo, m.currencyRepo, m.txRepo, m.auditRepo, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var euro = &domain.Currency{ID: 1, Code: "EUR", Name: "Euro", ExchangeRate: decimal.NewFromInt(1)}

func TestSend(t *testing.T) {
	amount := decimal.RequireFromString("50.00")
	senderWallet := func() *domain.Wallet {
		return &domain.Wallet{ID: 7, OwnerID: 1, CurrencyID: 1, Balance: decimal.RequireFromString("120.50")}
	}
	receiverWallet := &domain.Wallet{ID: 8, OwnerID: 2, CurrencyID: 1}

	tests := []struct {
		name          string
		senderID      int
		receiverID    int
		amount        decimal.Decimal
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:       "Transfer to existing wallet",
			senderID:   1,
			receiverID: 2,
			amount:     amount,
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(euro, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet(), nil)
				m.userRepo.EXPECT().Exists(gomock.Any(), 2).Return(true, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(receiverWallet, nil)
				m.walletRepo.EXPECT().Debit(gomock.Any(), 7, amount).Return(true, nil)
				m.walletRepo.EXPECT().Credit(gomock.Any(), 8, amount).Return(nil)
				m.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						tx.ID = 11
						return tx, nil
					})
			},
		},
		{
			name:       "Receiver wallet auto-provisioned",
			senderID:   1,
			receiverID: 3,
			amount:     amount,
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(euro, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet(), nil)
				m.userRepo.EXPECT().Exists(gomock.Any(), 3).Return(true, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 3, 1).Return(nil, nil)
				m.walletRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
						assert.Equal(t, "Auto EUR", w.Name)
						assert.Equal(t, 3, w.OwnerID)
						w.ID = 9
						return w, nil
					})
				m.auditRepo.EXPECT().Record(gomock.Any(), "wallets", "AUTO_CREATE").Return(nil)
				m.walletRepo.EXPECT().Debit(gomock.Any(), 7, amount).Return(true, nil)
				m.walletRepo.EXPECT().Credit(gomock.Any(), 9, amount).Return(nil)
				m.txRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Transaction{ID: 12}, nil)
			},
		},
		{
			name:          "Non-positive amount",
			senderID:      1,
			receiverID:    2,
			amount:        decimal.Zero,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Self transfer",
			senderID:      1,
			receiverID:    1,
			amount:        amount,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrSelfTransfer,
		},
		{
			name:       "Unknown currency",
			senderID:   1,
			receiverID: 2,
			amount:     amount,
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrCurrencyNotFound,
		},
		{
			name:       "Sender has no wallet in currency",
			senderID:   1,
			receiverID: 2,
			amount:     amount,
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(euro, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(nil, nil)
			},
			expectedError: ErrNoSenderWallet,
		},
		{
			name:       "Balance too low",
			senderID:   1,
			receiverID: 2,
			amount:     decimal.RequireFromString("500.00"),
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(euro, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet(), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:       "Receiver does not exist",
			senderID:   1,
			receiverID: 99,
			amount:     amount,
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(euro, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet(), nil)
				m.userRepo.EXPECT().Exists(gomock.Any(), 99).Return(false, nil)
			},
			expectedError: ErrReceiverNotFound,
		},
		{
			name:       "Concurrent debit loses",
			senderID:   1,
			receiverID: 2,
			amount:     amount,
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(euro, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet(), nil)
				m.userRepo.EXPECT().Exists(gomock.Any(), 2).Return(true, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(receiverWallet, nil)
				m.walletRepo.EXPECT().Debit(gomock.Any(), 7, amount).Return(false, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:       "Credit failure aborts transfer",
			senderID:   1,
			receiverID: 2,
			amount:     amount,
			prepareMock: func(m *mocks) {
				m.currencyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(euro, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet(), nil)
				m.userRepo.EXPECT().Exists(gomock.Any(), 2).Return(true, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(receiverWallet, nil)
				m.walletRepo.EXPECT().Debit(gomock.Any(), 7, amount).Return(true, nil)
				m.walletRepo.EXPECT().Credit(gomock.Any(), 8, amount).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			transaction, err := service.Send(context.Background(), tt.senderID, tt.receiverID, 1, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.senderID, transaction.SenderID)
				assert.Equal(t, tt.receiverID, transaction.ReceiverID)
				assert.Equal(t, "EUR", transaction.CurrencyCode)
			}
		})
	}
}

func TestRevert(t *testing.T) {
	amount := decimal.RequireFromString("50.00")
	original := func() *domain.Transaction {
		return &domain.Transaction{
			ID:           11,
			SenderID:     1,
			ReceiverID:   2,
			CurrencyID:   1,
			CurrencyCode: "EUR",
			Amount:       amount,
		}
	}
	senderWallet := &domain.Wallet{ID: 7, OwnerID: 1, CurrencyID: 1}
	receiverWallet := &domain.Wallet{ID: 8, OwnerID: 2, CurrencyID: 1}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Transaction reverted",
			prepareMock: func(m *mocks) {
				m.txRepo.EXPECT().FindByID(gomock.Any(), 11).Return(original(), nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(receiverWallet, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.walletRepo.EXPECT().Debit(gomock.Any(), 8, amount).Return(true, nil)
				m.walletRepo.EXPECT().Credit(gomock.Any(), 7, amount).Return(nil)
				m.txRepo.EXPECT().MarkReverted(gomock.Any(), 11, 7, gomock.Any()).Return(true, nil)
				m.auditRepo.EXPECT().Record(gomock.Any(), "transactions", "REVERT").Return(nil)
			},
		},
		{
			name: "Transaction not found",
			prepareMock: func(m *mocks) {
				m.txRepo.EXPECT().FindByID(gomock.Any(), 11).Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
		{
			name: "Already reverted",
			prepareMock: func(m *mocks) {
				tx := original()
				tx.Reverted = true
				m.txRepo.EXPECT().FindByID(gomock.Any(), 11).Return(tx, nil)
			},
			expectedError: ErrAlreadyReverted,
		},
		{
			name: "Receiver wallet deleted",
			prepareMock: func(m *mocks) {
				m.txRepo.EXPECT().FindByID(gomock.Any(), 11).Return(original(), nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(nil, nil)
			},
			expectedError: ErrWalletMissing,
		},
		{
			name: "Receiver already spent the funds",
			prepareMock: func(m *mocks) {
				m.txRepo.EXPECT().FindByID(gomock.Any(), 11).Return(original(), nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(receiverWallet, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.walletRepo.EXPECT().Debit(gomock.Any(), 8, amount).Return(false, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name: "Concurrent revert loses",
			prepareMock: func(m *mocks) {
				m.txRepo.EXPECT().FindByID(gomock.Any(), 11).Return(original(), nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(senderWallet, nil)
				m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(receiverWallet, nil)
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.walletRepo.EXPECT().Debit(gomock.Any(), 8, amount).Return(true, nil)
				m.walletRepo.EXPECT().Credit(gomock.Any(), 7, amount).Return(nil)
				m.txRepo.EXPECT().MarkReverted(gomock.Any(), 11, 7, gomock.Any()).Return(false, nil)
			},
			expectedError: ErrAlreadyReverted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			transaction, err := service.Revert(context.Background(), 7, 11)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, transaction.Reverted)
				assert.Equal(t, 7, *transaction.RevertedBy)
				assert.NotNil(t, transaction.RevertedAt)
			}
		})
	}
}

func TestListMine(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Transactions listed", func(t *testing.T) {
		transactions := []domain.Transaction{{ID: 11, SenderID: 1, ReceiverID: 2}}
		m.txRepo.EXPECT().ListByUser(gomock.Any(), 1).Return(transactions, nil)

		result, err := service.ListMine(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, transactions, result)
	})

	t.Run("Repo error", func(t *testing.T) {
		m.txRepo.EXPECT().ListByUser(gomock.Any(), 1).Return(nil, errors.New("db error"))

		_, err := service.ListMine(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestListAll(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		pageSize       int
		expectedLimit  int
		expectedOffset int
	}{
		{"Defaults applied", 0, 0, 20, 0},
		{"Second page", 2, 10, 10, 10},
		{"Oversized page clamped", 1, 500, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			transactions := []domain.Transaction{{ID: 11}}
			m.txRepo.EXPECT().ListAll(gomock.Any(), tt.expectedLimit, tt.expectedOffset).
				Return(transactions, 42, nil)

			result, total, err := service.ListAll(context.Background(), tt.page, tt.pageSize)
			assert.NoError(t, err)
			assert.Equal(t, 42, total)
			assert.Equal(t, transactions, result)
		})
	}

	t.Run("Repo error", func(t *testing.T) {
		service, m := NewMock(t)
		m.txRepo.EXPECT().ListAll(gomock.Any(), 20, 0).Return(nil, 0, errors.New("db error"))

		_, _, err := service.ListAll(context.Background(), 1, 20)
		assert.Error(t, err)
	})
}

func TestRevert_PreservesTimeOrdering(t *testing.T) {
	service, m := NewMock(t)
	amount := decimal.NewFromInt(5)
	before := time.Now()

	m.txRepo.EXPECT().FindByID(gomock.Any(), 11).Return(&domain.Transaction{
		ID: 11, SenderID: 1, ReceiverID: 2, CurrencyID: 1, Amount: amount,
	}, nil)
	m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 1, 1).Return(&domain.Wallet{ID: 7}, nil)
	m.walletRepo.EXPECT().FindByOwnerAndCurrency(gomock.Any(), 2, 1).Return(&domain.Wallet{ID: 8}, nil)
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	m.walletRepo.EXPECT().Debit(gomock.Any(), 8, amount).Return(true, nil)
	m.walletRepo.EXPECT().Credit(gomock.Any(), 7, amount).Return(nil)
	m.txRepo.EXPECT().MarkReverted(gomock.Any(), 11, 3, gomock.Any()).Return(true, nil)
	m.auditRepo.EXPECT().Record(gomock.Any(), "transactions", "REVERT").Return(nil)

	transaction, err := service.Revert(context.Background(), 3, 11)
	assert.NoError(t, err)
	assert.False(t, transaction.RevertedAt.Before(before))
}
