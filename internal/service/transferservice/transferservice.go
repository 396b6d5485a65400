package transferservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/pg"
)

type WalletRepo interface {
	FindByOwnerAndCurrency(ctx context.Context, ownerID, currencyID int) (*domain.Wallet, error)
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID int, amount decimal.Decimal) (bool, error)
	Credit(ctx context.Context, walletID int, amount decimal.Decimal) error
}

type UserRepo interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type CurrencyRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Currency, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByID(ctx context.Context, id int) (*domain.Transaction, error)
	MarkReverted(ctx context.Context, id, revertedBy int, revertedAt time.Time) (bool, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Transaction, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Transaction, int, error)
}

type AuditRepo interface {
	Record(ctx context.Context, tableName, operation string) error
}

type Service struct {
	walletRepo   WalletRepo
	userRepo     UserRepo
	currencyRepo CurrencyRepo
	txRepo       TransactionRepo
	auditRepo    AuditRepo
	txManager    pg.TXManager
}

func New(walletRepo WalletRepo, userRepo UserRepo, currencyRepo CurrencyRepo, txRepo TransactionRepo, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:   walletRepo,
		userRepo:     userRepo,
		currencyRepo: currencyRepo,
		txRepo:       txRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
	}
}

var (
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrSelfTransfer        = errors.New("cannot transfer to yourself")
	ErrCurrencyNotFound    = errors.New("invalid currency")
	ErrNoSenderWallet      = errors.New("sender has no wallet in that currency")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrReceiverNotFound    = errors.New("receiver does not exist")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlreadyReverted     = errors.New("transaction already reverted")
	ErrWalletMissing       = errors.New("wallet no longer exists, manual intervention required")
)

// Send moves amount between the two users' wallets in the given currency.
// A missing receiver wallet is provisioned on the fly. Debit, credit,
// provisioning, and the transaction record commit atomically.
func (s *Service) Send(ctx context.Context, senderID, receiverID, currencyID int, amount decimal.Decimal) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if senderID == receiverID {
		return nil, ErrSelfTransfer
	}

	currency, err := s.currencyRepo.FindByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, ErrCurrencyNotFound
	}

	senderWallet, err := s.walletRepo.FindByOwnerAndCurrency(ctx, senderID, currencyID)
	if err != nil {
		return nil, err
	}
	if senderWallet == nil {
		return nil, ErrNoSenderWallet
	}
	if senderWallet.Balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	receiverExists, err := s.userRepo.Exists(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if !receiverExists {
		return nil, ErrReceiverNotFound
	}

	transaction := &domain.Transaction{
		SenderID:        senderID,
		ReceiverID:      receiverID,
		CurrencyID:      currencyID,
		CurrencyCode:    currency.Code,
		Amount:          amount,
		TransactionDate: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		receiverWallet, err := s.walletRepo.FindByOwnerAndCurrency(ctx, receiverID, currencyID)
		if err != nil {
			return err
		}
		if receiverWallet == nil {
			receiverWallet = &domain.Wallet{
				Name:       "Auto " + currency.Code,
				OwnerID:    receiverID,
				CurrencyID: currencyID,
				Balance:    decimal.Zero,
			}
			if _, err := s.walletRepo.Create(ctx, receiverWallet); err != nil {
				return err
			}
			if err := s.auditRepo.Record(ctx, "wallets", "AUTO_CREATE"); err != nil {
				return err
			}
		}

		// The conditional debit is the authoritative funds check; the
		// read above only produces a friendlier early rejection.
		ok, err := s.walletRepo.Debit(ctx, senderWallet.ID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientFunds
		}
		if err := s.walletRepo.Credit(ctx, receiverWallet.ID, amount); err != nil {
			return err
		}

		_, err = s.txRepo.Create(ctx, transaction)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			zap.L().Error("transfer failed", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("transfer completed",
		zap.Int("transaction_id", transaction.ID),
		zap.Int("sender_id", senderID),
		zap.Int("receiver_id", receiverID),
		zap.String("amount", amount.String()),
		zap.String("currency", currency.Code))
	return transaction, nil
}

// Revert undoes a transfer: the receiver's wallet is debited, the sender's
// credited, and the transaction marked reverted. Both wallets must still
// exist; nothing is repaired automatically.
func (s *Service) Revert(ctx context.Context, revertedBy, transactionID int) (*domain.Transaction, error) {
	transaction, err := s.txRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, ErrTransactionNotFound
	}
	if transaction.Reverted {
		return nil, ErrAlreadyReverted
	}

	senderWallet, err := s.walletRepo.FindByOwnerAndCurrency(ctx, transaction.SenderID, transaction.CurrencyID)
	if err != nil {
		return nil, err
	}
	receiverWallet, err := s.walletRepo.FindByOwnerAndCurrency(ctx, transaction.ReceiverID, transaction.CurrencyID)
	if err != nil {
		return nil, err
	}
	if senderWallet == nil || receiverWallet == nil {
		zap.L().Warn("revert target wallet missing", zap.Int("transaction_id", transactionID))
		return nil, ErrWalletMissing
	}

	revertedAt := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.walletRepo.Debit(ctx, receiverWallet.ID, transaction.Amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientFunds
		}
		if err := s.walletRepo.Credit(ctx, senderWallet.ID, transaction.Amount); err != nil {
			return err
		}

		marked, err := s.txRepo.MarkReverted(ctx, transactionID, revertedBy, revertedAt)
		if err != nil {
			return err
		}
		if !marked {
			return ErrAlreadyReverted
		}
		return s.auditRepo.Record(ctx, "transactions", "REVERT")
	})
	if err != nil {
		return nil, err
	}

	transaction.Reverted = true
	transaction.RevertedBy = &revertedBy
	transaction.RevertedAt = &revertedAt
	zap.L().Info("transaction reverted",
		zap.Int("transaction_id", transactionID), zap.Int("reverted_by", revertedBy))
	return transaction, nil
}

func (s *Service) ListMine(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (s *Service) ListAll(ctx context.Context, page, pageSize int) ([]domain.Transaction, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	transactions, total, err := s.txRepo.ListAll(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, 0, err
	}
	return transactions, total, nil
}
