package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the seeded role name attached to every user. Authorization
// decisions branch on the type's predicates, never on raw strings.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleRegular Role = "RegularUser"
	RolePaying  Role = "PayingUser"
)

// CardQuota is the maximum number of cards a wallet owned by a user
// with this role may carry.
func (r Role) CardQuota() int {
	switch r {
	case RolePaying, RoleAdmin:
		return 3
	default:
		return 1
	}
}

func (r Role) CanRevert() bool {
	return r == RoleAdmin
}

func (r Role) CanListAllTransactions() bool {
	return r == RoleAdmin
}

// CanToggleCard reports whether this role may block or unblock a card;
// isOwner tells whether the caller owns the card's wallet.
func (r Role) CanToggleCard(isOwner bool) bool {
	return r == RoleAdmin || isOwner
}

type User struct {
	ID           int       `db:"id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Currency struct {
	ID           int             `db:"id"`
	Code         string          `db:"code"`
	Name         string          `db:"name"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
}

type Wallet struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	OwnerID      int             `db:"owner_id"`
	CurrencyID   int             `db:"currency_id"`
	CurrencyCode string          `db:"currency_code"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Card struct {
	ID             int       `db:"id"`
	CardNumber     string    `db:"card_number"`
	ExpirationDate time.Time `db:"expiration_date"`
	Blocked        bool      `db:"blocked"`
	WalletID       int       `db:"wallet_id"`
	OwnerID        int       `db:"owner_id"`
}

type Transaction struct {
	ID              int             `db:"id"`
	SenderID        int             `db:"sender_id"`
	ReceiverID      int             `db:"receiver_id"`
	CurrencyID      int             `db:"currency_id"`
	CurrencyCode    string          `db:"currency_code"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Reverted        bool            `db:"reverted"`
	RevertedBy      *int            `db:"reverted_by"`
	RevertedAt      *time.Time      `db:"reverted_at"`
}

type AuditEntry struct {
	ID            int       `db:"id"`
	TableName     string    `db:"table_name"`
	Operation     string    `db:"operation"`
	OperationDate time.Time `db:"operation_date"`
}
