package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Record(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		tableName string
		operation string
		mockSetup func()
		expectErr bool
	}{
		{
			name:      "Withdrawal recorded",
			tableName: "cards",
			operation: "WITHDRAW",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO audit_log (table_name, operation)`)).
					WithArgs("cards", "WITHDRAW").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:      "Revert recorded",
			tableName: "transactions",
			operation: "REVERT",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO audit_log (table_name, operation)`)).
					WithArgs("transactions", "REVERT").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:      "Database error",
			tableName: "wallets",
			operation: "AUTO_CREATE",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO audit_log (table_name, operation)`)).
					WithArgs("wallets", "AUTO_CREATE").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Record(context.Background(), tt.tableName, tt.operation)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
