package walletservice

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/viwallet/viwallet/internal/domain"
)

type WalletRepo interface {
	FindByOwner(ctx context.Context, ownerID int) ([]domain.Wallet, error)
	FindByOwnerAndID(ctx context.Context, ownerID, walletID int) (*domain.Wallet, error)
	FindByOwnerAndCurrency(ctx context.Context, ownerID, currencyID int) (*domain.Wallet, error)
	NameTaken(ctx context.Context, ownerID int, name string, excludeID int) (bool, error)
	Create(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error)
	Rename(ctx context.Context, walletID int, name string) error
	Delete(ctx context.Context, walletID int) error
}

type CurrencyRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Currency, error)
	FindByCode(ctx context.Context, code string) (*domain.Currency, error)
}

type CardRepo interface {
	CountByWallet(ctx context.Context, walletID int) (int, error)
}

type Service struct {
	walletRepo   WalletRepo
	currencyRepo CurrencyRepo
	cardRepo     CardRepo
}

func New(walletRepo WalletRepo, currencyRepo CurrencyRepo, cardRepo CardRepo) *Service {
	return &Service{
		walletRepo:   walletRepo,
		currencyRepo: currencyRepo,
		cardRepo:     cardRepo,
	}
}

const maxWalletNameLen = 50

const defaultCurrencyCode = "EUR"

var (
	ErrCurrencyNotFound = errors.New("invalid currency")
	ErrWalletExists     = errors.New("wallet in that currency already exists")
	ErrInvalidName      = errors.New("invalid wallet name")
	ErrNameTaken        = errors.New("wallet name already in use")
	ErrNameUnchanged    = errors.New("wallet name is unchanged")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrWalletNotEmpty   = errors.New("wallet not empty")
	ErrWalletHasCards   = errors.New("wallet has attached cards")
)

func validName(name string) bool {
	return name != "" && utf8.RuneCountInString(name) <= maxWalletNameLen
}

func (s *Service) Create(ctx context.Context, ownerID int, name string, currencyID int) (*domain.Wallet, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}

	currency, err := s.currencyRepo.FindByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, ErrCurrencyNotFound
	}

	existing, err := s.walletRepo.FindByOwnerAndCurrency(ctx, ownerID, currencyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("wallet already exists for currency",
			zap.Int("owner_id", ownerID), zap.String("currency", currency.Code))
		return nil, ErrWalletExists
	}

	taken, err := s.walletRepo.NameTaken(ctx, ownerID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	wallet := &domain.Wallet{
		Name:         name,
		OwnerID:      ownerID,
		CurrencyID:   currencyID,
		CurrencyCode: currency.Code,
		Balance:      decimal.Zero,
	}
	if _, err := s.walletRepo.Create(ctx, wallet); err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// CreateDefault provisions the wallet every new user starts with.
func (s *Service) CreateDefault(ctx context.Context, ownerID int) (*domain.Wallet, error) {
	currency, err := s.currencyRepo.FindByCode(ctx, defaultCurrencyCode)
	if err != nil {
		return nil, err
	}
	if currency == nil {
		return nil, ErrCurrencyNotFound
	}
	return s.Create(ctx, ownerID, currency.Code+" Wallet", currency.ID)
}

func (s *Service) Rename(ctx context.Context, ownerID, walletID int, newName string) (*domain.Wallet, error) {
	if !validName(newName) {
		return nil, ErrInvalidName
	}

	wallet, err := s.walletRepo.FindByOwnerAndID(ctx, ownerID, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	if wallet.Name == newName {
		return nil, ErrNameUnchanged
	}

	taken, err := s.walletRepo.NameTaken(ctx, ownerID, newName, walletID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	if err := s.walletRepo.Rename(ctx, walletID, newName); err != nil {
		return nil, err
	}
	wallet.Name = newName
	return wallet, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, walletID int) error {
	wallet, err := s.walletRepo.FindByOwnerAndID(ctx, ownerID, walletID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return ErrWalletNotFound
	}
	if !wallet.Balance.IsZero() {
		return ErrWalletNotEmpty
	}

	cards, err := s.cardRepo.CountByWallet(ctx, walletID)
	if err != nil {
		return err
	}
	if cards > 0 {
		return ErrWalletHasCards
	}

	if err := s.walletRepo.Delete(ctx, walletID); err != nil {
		zap.L().Error("can't delete wallet", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, ownerID int) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get wallets", zap.Error(err))
		return nil, err
	}
	return wallets, nil
}

func (s *Service) Get(ctx context.Context, ownerID, walletID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindByOwnerAndID(ctx, ownerID, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}
