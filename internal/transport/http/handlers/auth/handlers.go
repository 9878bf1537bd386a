package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/auth"
	"github.com/kalarp/employee-management-system/internal/transport/http/api"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
)

type Handler struct {
	Secret     string
	AdminEmail string
	AdminHash  string
}

func NewHandler(secret, adminEmail, adminHash string) *Handler {
	return &Handler{Secret: secret, AdminEmail: adminEmail, AdminHash: adminHash}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	if !strings.EqualFold(payload.Email, h.AdminEmail) || !auth.CheckPassword(h.AdminHash, payload.Password) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.IssueToken(h.Secret, h.AdminEmail, time.Now())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"token": token}, middleware.GetRequestID(r.Context()))
}
