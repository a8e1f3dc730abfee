package model

import (
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
)

// Budget caps spending in one category for one calendar month.
// Month is formatted "2006-01".
type Budget struct {
	ID        string       `db:"id"`
	UserID    string       `db:"user_id"`
	Category  Category     `db:"category"`
	Month     string       `db:"month"`
	Limit     money.Amount `db:"limit_amount"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
