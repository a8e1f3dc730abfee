package model

import (
	"errors"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
)

const (
	TransactionKindIncome  = "income"
	TransactionKindExpense = "expense"
)

var ErrInvalidTransactionKind = errors.New("kind must be income or expense")

type Transaction struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	Kind        string       `db:"kind"`
	Amount      money.Amount `db:"amount"`
	Category    Category     `db:"category"`
	Description string       `db:"description"`
	OccurredOn  time.Time    `db:"occurred_on"`
	CreatedAt   time.Time    `db:"created_at"`
}

func ValidTransactionKind(kind string) bool {
	return kind == TransactionKindIncome || kind == TransactionKindExpense
}

func (t *Transaction) IsExpense() bool {
	return t.Kind == TransactionKindExpense
}
