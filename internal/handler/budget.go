package handler

import (
	"net/http"

	"github.com/SyedqaderEng/financeOS-sub001/internal/ctxkeys"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
)

type BudgetHandler struct {
	budgetService      *service.BudgetService
	transactionService *service.TransactionService
}

func NewBudgetHandler(budgetService *service.BudgetService, transactionService *service.TransactionService) *BudgetHandler {
	return &BudgetHandler{
		budgetService:      budgetService,
		transactionService: transactionService,
	}
}

type setBudgetRequest struct {
	Category string       `json:"category"`
	Month    string       `json:"month"`
	Limit    money.Amount `json:"limit"`
}

// Report returns budget vs actual for ?month=YYYY-MM.
func (h *BudgetHandler) Report(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	month, err := h.transactionService.CurrentMonth(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.budgetService.Report(r.Context(), user.ID, month)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *BudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req setBudgetRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	budget, err := h.budgetService.Set(r.Context(), user.ID, service.SetBudgetInput{
		Category: req.Category,
		Month:    req.Month,
		Limit:    req.Limit,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newBudgetView(budget))
}
