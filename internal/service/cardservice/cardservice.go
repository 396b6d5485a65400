package cardservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/viwallet/viwallet/internal/domain"
	"github.com/viwallet/viwallet/internal/pg"
)

type CardRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Card, error)
	NumberExists(ctx context.Context, cardNumber string) (bool, error)
	CountByWallet(ctx context.Context, walletID int) (int, error)
	ListByOwner(ctx context.Context, ownerID int) ([]domain.Card, error)
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)
	SetBlocked(ctx context.Context, id int, blocked bool) error
}

type WalletRepo interface {
	FindByOwnerAndID(ctx context.Context, ownerID, walletID int) (*domain.Wallet, error)
	Debit(ctx context.Context, walletID int, amount decimal.Decimal) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type AuditRepo interface {
	Record(ctx context.Context, tableName, operation string) error
}

type Service struct {
	cardRepo   CardRepo
	walletRepo WalletRepo
	userRepo   UserRepo
	auditRepo  AuditRepo
	txManager  pg.TXManager
}

func New(cardRepo CardRepo, walletRepo WalletRepo, userRepo UserRepo, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		cardRepo:   cardRepo,
		walletRepo: walletRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
	}
}

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrCardLimitReached  = errors.New("card limit reached for this wallet")
	ErrCardNumberExists  = errors.New("card number already exists")
	ErrCardExpired       = errors.New("expiration date must be in the future")
	ErrCardNotFound      = errors.New("card not found")
	ErrForbidden         = errors.New("operation not allowed")
	ErrCardBlocked       = errors.New("card is blocked")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

func (s *Service) Create(ctx context.Context, ownerID, walletID int, cardNumber string, expiration time.Time) (*domain.Card, error) {
	wallet, err := s.walletRepo.FindByOwnerAndID(ctx, ownerID, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	if !expiration.After(time.Now()) {
		return nil, ErrCardExpired
	}

	// The quota follows the owner's current role, not the one minted into
	// the token at login time.
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrWalletNotFound
	}
	count, err := s.cardRepo.CountByWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if count >= owner.Role.CardQuota() {
		zap.L().Info("card quota reached",
			zap.Int("wallet_id", walletID), zap.String("role", string(owner.Role)))
		return nil, ErrCardLimitReached
	}

	exists, err := s.cardRepo.NumberExists(ctx, cardNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCardNumberExists
	}

	card := &domain.Card{
		CardNumber:     cardNumber,
		ExpirationDate: expiration,
		WalletID:       walletID,
		OwnerID:        ownerID,
	}
	if _, err := s.cardRepo.Create(ctx, card); err != nil {
		zap.L().Error("can't create card", zap.Error(err))
		return nil, err
	}
	return card, nil
}

// SetBlocked toggles the block flag. Admins may toggle any card, everyone
// else only cards attached to their own wallets.
func (s *Service) SetBlocked(ctx context.Context, requesterID int, requesterRole domain.Role, cardID int, blocked bool) error {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card == nil {
		return ErrCardNotFound
	}
	if !requesterRole.CanToggleCard(card.OwnerID == requesterID) {
		return ErrForbidden
	}
	return s.cardRepo.SetBlocked(ctx, cardID, blocked)
}

func (s *Service) Withdraw(ctx context.Context, ownerID, cardID int, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card == nil {
		return ErrCardNotFound
	}
	if card.OwnerID != ownerID {
		return ErrForbidden
	}
	if card.Blocked {
		return ErrCardBlocked
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.walletRepo.Debit(ctx, card.WalletID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientFunds
		}
		return s.auditRepo.Record(ctx, "cards", "WITHDRAW")
	})
}

func (s *Service) List(ctx context.Context, ownerID int) ([]domain.Card, error) {
	cards, err := s.cardRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get cards", zap.Error(err))
		return nil, err
	}
	return cards, nil
}
