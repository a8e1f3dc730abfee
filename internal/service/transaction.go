package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/repository"
	"github.com/SyedqaderEng/financeOS-sub001/internal/validation"
	"github.com/google/uuid"
)

var ErrNonPositiveTransaction = errors.New("transaction amount must be greater than zero")

type CreateTransactionInput struct {
	Kind        string
	Amount      money.Amount
	Category    string
	Description string
	// OccurredOn is YYYY-MM-DD; empty means today.
	OccurredOn string
}

type TransactionService struct {
	transactions repository.TransactionRepository
	now          func() time.Time
}

func NewTransactionService(transactions repository.TransactionRepository) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		now:          time.Now,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID string, in CreateTransactionInput) (*model.Transaction, error) {
	if !model.ValidTransactionKind(in.Kind) {
		return nil, invalidArgument(model.ErrInvalidTransactionKind)
	}

	if !in.Amount.IsPositive() {
		return nil, invalidArgument(ErrNonPositiveTransaction)
	}

	category := model.CategoryUncategorized
	if strings.TrimSpace(in.Category) != "" {
		var err error
		category, err = model.ParseCategory(in.Category)
		if err != nil {
			return nil, invalidArgument(err)
		}
	}

	err := validation.ValidateDescription(in.Description)
	if err != nil {
		return nil, invalidArgument(err)
	}

	now := s.now().UTC()
	occurredOn := now.Truncate(24 * time.Hour)
	if in.OccurredOn != "" {
		occurredOn, err = validation.ParseDate(in.OccurredOn)
		if err != nil {
			return nil, invalidArgument(err)
		}
	}

	t := &model.Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Kind:        in.Kind,
		Amount:      in.Amount,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		OccurredOn:  occurredOn,
		CreatedAt:   now,
	}

	err = s.transactions.Create(ctx, t)
	if err != nil {
		return nil, storageError("create transaction", err)
	}

	return t, nil
}

// Month lists the user's transactions in month, newest first.
func (s *TransactionService) Month(ctx context.Context, userID string, month model.Month) ([]*model.Transaction, error) {
	txs, err := s.transactions.Between(ctx, userID, month.Start(), month.End())
	if err != nil {
		return nil, storageError("list transactions", err)
	}
	return txs, nil
}

// CurrentMonth resolves an optional YYYY-MM query value, defaulting to
// the current UTC month.
func (s *TransactionService) CurrentMonth(raw string) (model.Month, error) {
	if raw == "" {
		return model.MonthOf(s.now()), nil
	}

	month, err := model.ParseMonth(raw)
	if err != nil {
		return model.Month{}, invalidArgument(err)
	}
	return month, nil
}
