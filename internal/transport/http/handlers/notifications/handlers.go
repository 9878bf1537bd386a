package notificationshandler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/notifications"
	"github.com/kalarp/employee-management-system/internal/platform/db"
	"github.com/kalarp/employee-management-system/internal/transport/http/api"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
)

type Handler struct {
	Service *notifications.Service
	Checker *notifications.Checker
	Now     func() time.Time
}

func NewHandler(service *notifications.Service, checker *notifications.Checker) *Handler {
	return &Handler{Service: service, Checker: checker, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/count", h.handleCount)
		r.Post("/check", h.handleCheck)
		r.Post("/{notificationID}/read", h.handleMarkRead)
	})
}

type notificationView struct {
	notifications.Notification
	IsOverdue bool `json:"isOverdue"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Service.Pending(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to list notifications", middleware.GetRequestID(r.Context()))
		return
	}

	today := h.Now()
	views := make([]notificationView, 0, len(pending))
	for _, notification := range pending {
		views = append(views, notificationView{
			Notification: notification,
			IsOverdue:    notification.IsOverdue(today),
		})
	}
	api.Success(w, views, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.Count(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to count notifications", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"pending": count}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "notificationID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid notification id", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "notification not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to mark notification read", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

// handleCheck triggers one synchronous compliance sweep outside the
// background schedule.
func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	h.Checker.RunOnce(r.Context())

	count, err := h.Service.Count(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_failed", "failed to count notifications", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]int{"pending": count}, middleware.GetRequestID(r.Context()))
}
