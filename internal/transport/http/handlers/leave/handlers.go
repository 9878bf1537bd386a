package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/leave"
	"github.com/kalarp/employee-management-system/internal/platform/db"
	"github.com/kalarp/employee-management-system/internal/transport/http/api"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
	"github.com/kalarp/employee-management-system/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave/requests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{requestID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Post("/approve", h.handleApprove)
			r.Post("/reject", h.handleReject)
		})
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employeeId"`
		LeaveType  string `json:"leaveType"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
		DaysCount  int    `json:"daysCount"`
		Reason     string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	start, err := shared.ParseDate(payload.StartDate)
	if err != nil || payload.StartDate == "" {
		api.Fail(w, http.StatusBadRequest, "validation_failed", "invalid startDate", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil || payload.EndDate == "" {
		api.Fail(w, http.StatusBadRequest, "validation_failed", "invalid endDate", middleware.GetRequestID(r.Context()))
		return
	}

	request := leave.LeaveRequest{
		EmployeeID: payload.EmployeeID,
		LeaveType:  leave.Type(payload.LeaveType),
		StartDate:  start,
		EndDate:    end,
		DaysCount:  payload.DaysCount,
		Reason:     payload.Reason,
		Status:     leave.StatusPending,
	}

	id, err := h.Service.Submit(r.Context(), request)
	if err != nil {
		if errors.Is(err, leave.ErrInvalidRange) || errors.Is(err, leave.ErrInvalidDays) || errors.Is(err, leave.ErrInvalidType) {
			api.Fail(w, http.StatusBadRequest, "validation_failed", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to create leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var filter leave.Filter
	if raw := r.URL.Query().Get("employeeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employeeId", middleware.GetRequestID(r.Context()))
			return
		}
		filter.EmployeeID = &id
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := leave.Status(raw)
		switch status {
		case leave.StatusPending, leave.StatusApproved, leave.StatusRejected:
			filter.Status = &status
		default:
			api.Fail(w, http.StatusBadRequest, "bad_request", "invalid status", middleware.GetRequestID(r.Context()))
			return
		}
	}

	requests, err := h.Service.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to list leave requests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request id", middleware.GetRequestID(r.Context()))
		return
	}

	request, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to load leave request", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request id", middleware.GetRequestID(r.Context()))
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "missing identity", middleware.GetRequestID(r.Context()))
		return
	}

	approved, err := h.Service.Approve(r.Context(), id, identity.Email)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to approve leave request", middleware.GetRequestID(r.Context()))
		return
	}
	if !approved {
		api.Fail(w, http.StatusConflict, "not_pending", "leave request is missing or not pending", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"id": id, "status": leave.StatusApproved}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid request id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	rejected, err := h.Service.Reject(r.Context(), id, payload.Reason)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to reject leave request", middleware.GetRequestID(r.Context()))
		return
	}
	if !rejected {
		api.Fail(w, http.StatusConflict, "not_pending", "leave request is missing or not pending", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"id": id, "status": leave.StatusRejected}, middleware.GetRequestID(r.Context()))
}
