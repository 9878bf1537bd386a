package documentshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/documents"
	"github.com/kalarp/employee-management-system/internal/platform/db"
	"github.com/kalarp/employee-management-system/internal/transport/http/api"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
)

type Handler struct {
	Service *documents.Service
	Store   documents.StoreAPI
}

func NewHandler(service *documents.Service, store documents.StoreAPI) *Handler {
	return &Handler{Service: service, Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Post("/employment-certificate", h.handleCertificate)
		r.Post("/leave-confirmation", h.handleConfirmation)
		r.Get("/employee/{employeeID}", h.handleListForEmployee)
		r.Get("/{documentID}/download", h.handleDownload)
	})
}

func (h *Handler) handleCertificate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employeeId"`
		Purpose    string `json:"purpose"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == 0 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}

	document, err := h.Service.GenerateEmploymentCertificate(r.Context(), payload.EmployeeID, payload.Purpose)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "generation_failed", "failed to generate certificate", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, document, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleConfirmation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RequestID int64 `json:"requestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.RequestID == 0 {
		api.Fail(w, http.StatusBadRequest, "bad_request", "requestId is required", middleware.GetRequestID(r.Context()))
		return
	}

	document, err := h.Service.GenerateLeaveConfirmation(r.Context(), payload.RequestID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "generation_failed", "failed to generate confirmation", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, document, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", middleware.GetRequestID(r.Context()))
		return
	}

	list, err := h.Store.ListForEmployee(r.Context(), employeeID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to list documents", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid document id", middleware.GetRequestID(r.Context()))
		return
	}

	document, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to load document", middleware.GetRequestID(r.Context()))
		return
	}
	if document.FilePath == "" {
		api.Fail(w, http.StatusNotFound, "no_file", "document has no stored file", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+document.DocumentName+`.pdf"`)
	http.ServeFile(w, r, document.FilePath)
}
