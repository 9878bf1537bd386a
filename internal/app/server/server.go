package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/auth"
	"github.com/kalarp/employee-management-system/internal/domain/documents"
	"github.com/kalarp/employee-management-system/internal/domain/employees"
	"github.com/kalarp/employee-management-system/internal/domain/leave"
	"github.com/kalarp/employee-management-system/internal/domain/notifications"
	"github.com/kalarp/employee-management-system/internal/domain/timesheet"
	"github.com/kalarp/employee-management-system/internal/platform/config"
	"github.com/kalarp/employee-management-system/internal/platform/db"
	"github.com/kalarp/employee-management-system/internal/platform/email"
	authhandler "github.com/kalarp/employee-management-system/internal/transport/http/handlers/auth"
	documentshandler "github.com/kalarp/employee-management-system/internal/transport/http/handlers/documents"
	employeeshandler "github.com/kalarp/employee-management-system/internal/transport/http/handlers/employees"
	leavehandler "github.com/kalarp/employee-management-system/internal/transport/http/handlers/leave"
	notificationshandler "github.com/kalarp/employee-management-system/internal/transport/http/handlers/notifications"
	timesheethandler "github.com/kalarp/employee-management-system/internal/transport/http/handlers/timesheet"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
)

// leaveNotifier turns leave decisions into in-app notifications.
type leaveNotifier struct {
	service *notifications.Service
}

func (n *leaveNotifier) LeaveDecided(ctx context.Context, request leave.LeaveRequest, approved bool) {
	verdict := "rejected"
	if approved {
		verdict = "approved"
	}
	employeeID := request.EmployeeID
	_, err := n.service.Create(ctx, notifications.Notification{
		EmployeeID: &employeeID,
		Type:       notifications.TypeLeaveRequest,
		Title:      fmt.Sprintf("Leave Request %s", verdict),
		Message: fmt.Sprintf("Leave request #%d (%s, %s to %s) was %s",
			request.ID, request.LeaveType,
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"),
			verdict),
	})
	if err != nil {
		slog.Warn("leave decision notification failed", "requestId", request.ID, "err", err)
	}
}

// Run wires every dependency and serves until SIGINT or SIGTERM.
func Run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Environment == "development" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	if err := os.MkdirAll(cfg.DocumentsDir, 0o755); err != nil {
		return fmt.Errorf("create documents directory: %w", err)
	}

	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	employeeStore := employees.NewStore(pool)
	timesheetStore := timesheet.NewStore(pool)
	leaveStore := leave.NewStore(pool)
	notificationStore := notifications.NewStore(pool)
	documentStore := documents.NewStore(pool)

	notificationService := notifications.New(notificationStore)
	leaveService := leave.NewService(leaveStore, &leaveNotifier{service: notificationService})
	documentService := documents.NewService(documentStore, employeeStore, leaveStore, cfg.DocumentsDir, documents.CompanyInfo{
		Name:      cfg.CompanyName,
		Address:   cfg.CompanyAddress,
		HRManager: cfg.CompanyHRManager,
	})

	checker := notifications.NewChecker(employeeStore, notificationStore, email.New(cfg), notifications.CheckerConfig{
		Windows: notifications.WarningWindows{
			Contract: cfg.ContractWarningDays,
			Medical:  cfg.MedicalExamWarningDays,
			Safety:   cfg.SafetyTrainingWarningDays,
		},
		Interval:     cfg.NotifyCheckInterval,
		DedupHistory: cfg.NotifyDedupHistory,
		EmailFrom:    cfg.EmailFrom,
		Report: func(count int) {
			slog.Info("compliance check finished", "pendingNotifications", count)
		},
	})
	checker.Start()
	defer checker.Stop()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(cfg.JWTSecret, cfg.AdminEmail, adminHash).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))
			employeeshandler.NewHandler(employeeStore, cfg.DefaultAnnualLeaveDays).RegisterRoutes(r)
			timesheethandler.NewHandler(timesheetStore).RegisterRoutes(r)
			leavehandler.NewHandler(leaveService).RegisterRoutes(r)
			notificationshandler.NewHandler(notificationService, checker).RegisterRoutes(r)
			documentshandler.NewHandler(documentService, documentStore).RegisterRoutes(r)
		})
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}
