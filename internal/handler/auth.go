package handler

import (
	"log/slog"
	"net/http"

	"github.com/SyedqaderEng/financeOS-sub001/internal/ctxkeys"
	"github.com/SyedqaderEng/financeOS-sub001/internal/middleware"
	"github.com/SyedqaderEng/financeOS-sub001/internal/model"
	"github.com/SyedqaderEng/financeOS-sub001/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		slog.Info("login failed", "error", err)
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user, http.StatusOK)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *model.User, status int) {
	token, expiresAt, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to sign session token", "user_id", user.ID, "error", err)
		writeError(w, r, err)
		return
	}

	h.authService.SetJWTCookie(w, token, expiresAt)
	// Keep the double-submit token with the client across the new session
	w.Header().Set(middleware.CSRFHeader, ctxkeys.CSRFToken(r.Context()))
	writeJSON(w, status, newUserView(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newUserView(ctxkeys.User(r.Context())))
}
