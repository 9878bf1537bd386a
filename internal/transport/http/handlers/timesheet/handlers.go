package timesheethandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
	"github.com/kalarp/employee-management-system/internal/domain/timesheet"
	"github.com/kalarp/employee-management-system/internal/platform/db"
	"github.com/kalarp/employee-management-system/internal/transport/http/api"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
	"github.com/kalarp/employee-management-system/internal/transport/http/shared"
)

type Handler struct {
	Store timesheet.StoreAPI
	Now   func() time.Time
}

func NewHandler(store timesheet.StoreAPI) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/time-entries", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
	})
}

type entryView struct {
	timesheet.TimeEntry
	HoursWorked float64 `json:"hoursWorked"`
}

func viewOf(entry timesheet.TimeEntry) entryView {
	return entryView{TimeEntry: entry, HoursWorked: entry.HoursWorked()}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employeeId"`
		Date       string `json:"date"`
		CheckIn    string `json:"checkIn"`
		CheckOut   string `json:"checkOut"`
		WorkMode   string `json:"workMode"`
		Notes      string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.EmployeeID == 0 || payload.Date == "" {
		api.Fail(w, http.StatusBadRequest, "validation_failed", "employeeId and date are required", middleware.GetRequestID(r.Context()))
		return
	}

	day, err := shared.ParseDate(payload.Date)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_failed", "invalid date", middleware.GetRequestID(r.Context()))
		return
	}
	checkIn, err := shared.ParseDatePtr(payload.CheckIn)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_failed", "invalid checkIn", middleware.GetRequestID(r.Context()))
		return
	}
	checkOut, err := shared.ParseDatePtr(payload.CheckOut)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_failed", "invalid checkOut", middleware.GetRequestID(r.Context()))
		return
	}

	entry := timesheet.TimeEntry{
		EmployeeID: payload.EmployeeID,
		Date:       day,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		WorkMode:   employees.WorkModeOffice,
		Notes:      payload.Notes,
	}
	if payload.WorkMode != "" {
		if !employees.ValidWorkMode(payload.WorkMode) {
			api.Fail(w, http.StatusBadRequest, "validation_failed", "invalid workMode", middleware.GetRequestID(r.Context()))
			return
		}
		entry.WorkMode = employees.WorkMode(payload.WorkMode)
	}

	id, err := h.Store.Create(r.Context(), entry)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to create time entry", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(r.URL.Query().Get("employeeId"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employeeId query parameter is required", middleware.GetRequestID(r.Context()))
		return
	}
	from, err := shared.ParseDatePtr(r.URL.Query().Get("from"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid from date", middleware.GetRequestID(r.Context()))
		return
	}
	to, err := shared.ParseDatePtr(r.URL.Query().Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid to date", middleware.GetRequestID(r.Context()))
		return
	}

	entries, err := h.Store.List(r.Context(), employeeID, from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to list time entries", middleware.GetRequestID(r.Context()))
		return
	}

	views := make([]entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, viewOf(entry))
	}
	api.Success(w, views, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employeeId"`
		WorkMode   string `json:"workMode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == 0 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}

	now := h.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if _, err := h.Store.OpenEntry(r.Context(), payload.EmployeeID, day); err == nil {
		api.Fail(w, http.StatusConflict, "already_checked_in", "an open entry already exists for today", middleware.GetRequestID(r.Context()))
		return
	} else if !errors.Is(err, db.ErrNotFound) {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to check today's entries", middleware.GetRequestID(r.Context()))
		return
	}

	entry := timesheet.TimeEntry{
		EmployeeID: payload.EmployeeID,
		Date:       day,
		CheckIn:    &now,
		WorkMode:   employees.WorkModeOffice,
	}
	if payload.WorkMode != "" {
		if !employees.ValidWorkMode(payload.WorkMode) {
			api.Fail(w, http.StatusBadRequest, "validation_failed", "invalid workMode", middleware.GetRequestID(r.Context()))
			return
		}
		entry.WorkMode = employees.WorkMode(payload.WorkMode)
	}

	id, err := h.Store.Create(r.Context(), entry)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to record check-in", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]any{"id": id, "checkIn": now}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64 `json:"employeeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == 0 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}

	now := h.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	entry, err := h.Store.OpenEntry(r.Context(), payload.EmployeeID, day)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusConflict, "not_checked_in", "no open entry found for today", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to check today's entries", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.SetCheckOut(r.Context(), entry.ID, now); err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to record check-out", middleware.GetRequestID(r.Context()))
		return
	}
	entry.CheckOut = &now
	api.Success(w, viewOf(entry), middleware.GetRequestID(r.Context()))
}
