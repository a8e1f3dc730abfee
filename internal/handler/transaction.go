package handler

import (
	"net/http"

	"github.com/SyedqaderEng/financeOS-sub001/internal/ctxkeys"
	"github.com/SyedqaderEng/financeOS-sub001/internal/money"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

type createTransactionRequest struct {
	Kind        string       `json:"kind"`
	Amount      money.Amount `json:"amount"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	OccurredOn  string       `json:"occurredOn"`
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	month, err := h.transactionService.CurrentMonth(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	txs, err := h.transactionService.Month(r.Context(), user.ID, month)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := make([]TransactionView, 0, len(txs))
	for _, t := range txs {
		views = append(views, newTransactionView(t))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createTransactionRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	t, err := h.transactionService.Create(r.Context(), user.ID, service.CreateTransactionInput{
		Kind:        req.Kind,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		OccurredOn:  req.OccurredOn,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newTransactionView(t))
}
