package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/SyedqaderEng/financeOS-sub001/internal/ctxkeys"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
	"github.com/jmoiron/sqlx"
)

type DashboardHandler struct {
	analyticsService   *service.AnalyticsService
	transactionService *service.TransactionService
}

func NewDashboardHandler(analyticsService *service.AnalyticsService, transactionService *service.TransactionService) *DashboardHandler {
	return &DashboardHandler{
		analyticsService:   analyticsService,
		transactionService: transactionService,
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	month, err := h.transactionService.CurrentMonth(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	dashboard, err := h.analyticsService.Dashboard(r.Context(), user.ID, month)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz reports 503 when the database does not answer a ping.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	err := h.db.PingContext(ctx)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
