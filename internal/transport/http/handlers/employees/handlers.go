package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
	"github.com/kalarp/employee-management-system/internal/platform/db"
	"github.com/kalarp/employee-management-system/internal/transport/http/api"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
	"github.com/kalarp/employee-management-system/internal/transport/http/shared"
)

type Handler struct {
	Store              employees.StoreAPI
	DefaultAnnualLeave int
}

func NewHandler(store employees.StoreAPI, defaultAnnualLeave int) *Handler {
	return &Handler{Store: store, DefaultAnnualLeave: defaultAnnualLeave}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

type employeePayload struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Pesel              string `json:"pesel"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Position           string `json:"position"`
	Department         string `json:"department"`
	HireDate           string `json:"hireDate"`
	ContractNumber     string `json:"contractNumber"`
	ContractType       string `json:"contractType"`
	ContractEndDate    string `json:"contractEndDate"`
	AnnualLeaveDays    *int   `json:"annualLeaveDays"`
	RemainingLeaveDays *int   `json:"remainingLeaveDays"`
	WorkMode           string `json:"workMode"`
	MedicalExamDate    string `json:"medicalExamDate"`
	SafetyTrainingDate string `json:"safetyTrainingDate"`
}

func (h *Handler) buildEmployee(payload employeePayload) (employees.Employee, string) {
	if payload.FirstName == "" || payload.LastName == "" || payload.Pesel == "" {
		return employees.Employee{}, "firstName, lastName and pesel are required"
	}

	employee := employees.Employee{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Pesel:          payload.Pesel,
		Address:        payload.Address,
		Phone:          payload.Phone,
		Email:          payload.Email,
		Position:       payload.Position,
		Department:     payload.Department,
		ContractNumber: payload.ContractNumber,
		ContractType:   employees.ContractEmployment,
		WorkMode:       employees.WorkModeOffice,
	}

	if payload.ContractType != "" {
		if !employees.ValidContractType(payload.ContractType) {
			return employees.Employee{}, "invalid contractType"
		}
		employee.ContractType = employees.ContractType(payload.ContractType)
	}
	if payload.WorkMode != "" {
		if !employees.ValidWorkMode(payload.WorkMode) {
			return employees.Employee{}, "invalid workMode"
		}
		employee.WorkMode = employees.WorkMode(payload.WorkMode)
	}

	for _, field := range []struct {
		raw  string
		dest **time.Time
		name string
	}{
		{payload.HireDate, &employee.HireDate, "hireDate"},
		{payload.ContractEndDate, &employee.ContractEndDate, "contractEndDate"},
		{payload.MedicalExamDate, &employee.MedicalExamDate, "medicalExamDate"},
		{payload.SafetyTrainingDate, &employee.SafetyTrainingDate, "safetyTrainingDate"},
	} {
		parsed, err := shared.ParseDatePtr(field.raw)
		if err != nil {
			return employees.Employee{}, "invalid " + field.name
		}
		*field.dest = parsed
	}

	employee.AnnualLeaveDays = h.DefaultAnnualLeave
	if payload.AnnualLeaveDays != nil {
		employee.AnnualLeaveDays = *payload.AnnualLeaveDays
	}
	employee.RemainingLeaveDays = employee.AnnualLeaveDays
	if payload.RemainingLeaveDays != nil {
		employee.RemainingLeaveDays = *payload.RemainingLeaveDays
	}
	return employee, ""
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	employee, problem := h.buildEmployee(payload)
	if problem != "" {
		api.Fail(w, http.StatusBadRequest, "validation_failed", problem, middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.Create(r.Context(), employee)
	if err != nil {
		if errors.Is(err, db.ErrConflict) {
			api.Fail(w, http.StatusConflict, "duplicate_pesel", "an employee with this pesel already exists", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", middleware.GetRequestID(r.Context()))
		return
	}

	employee, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to load employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid json payload", middleware.GetRequestID(r.Context()))
		return
	}

	employee, problem := h.buildEmployee(payload)
	if problem != "" {
		api.Fail(w, http.StatusBadRequest, "validation_failed", problem, middleware.GetRequestID(r.Context()))
		return
	}
	employee.ID = id

	if err := h.Store.Update(r.Context(), employee); err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, db.ErrConflict):
			api.Fail(w, http.StatusConflict, "duplicate_pesel", "an employee with this pesel already exists", middleware.GetRequestID(r.Context()))
		default:
			api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to update employee", middleware.GetRequestID(r.Context()))
		}
		return
	}
	api.Success(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to delete employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}
