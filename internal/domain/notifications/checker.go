package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
)

// Mailer delivers a notification by email.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// EmployeeSource is the slice of the employee store the checker needs.
type EmployeeSource interface {
	List(ctx context.Context) ([]employees.Employee, error)
}

type CheckerConfig struct {
	Windows  WarningWindows
	Interval time.Duration
	// DedupHistory widens duplicate suppression to every stored
	// notification instead of only unread ones, so a dismissed alert
	// for the same due date is not recreated on the next cycle.
	DedupHistory bool
	EmailFrom    string
	// Report receives the unread count once per completed cycle.
	Report func(count int)
}

// Checker is the background compliance scanner. One cycle evaluates
// every employee, suppresses already-alerted due events and persists
// the rest.
type Checker struct {
	employees EmployeeSource
	store     StoreAPI
	mailer    Mailer
	cfg       CheckerConfig

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

func NewChecker(source EmployeeSource, store StoreAPI, mailer Mailer, cfg CheckerConfig) *Checker {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	return &Checker{employees: source, store: store, mailer: mailer, cfg: cfg}
}

// Start launches the background loop. Calling it while already running
// is a no-op; no second loop is spawned.
func (c *Checker) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.stop, c.done)
	slog.Info("notification checker started", "interval", c.cfg.Interval)
}

// Stop signals the loop and blocks until the in-flight cycle, if any,
// has finished. Cancellation is cooperative: a cycle is never cut off
// mid-write.
func (c *Checker) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	close(c.stop)
	done := c.done
	c.running = false
	c.mu.Unlock()

	<-done
	slog.Info("notification checker stopped")
}

func (c *Checker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	c.RunOnce(context.Background())

	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.RunOnce(context.Background())
		}
	}
}

// RunOnce executes a single cycle: evaluate every employee, create the
// deduplicated alerts and report the unread count. A failure while
// persisting one employee's alert is logged and skipped; the rest of
// the cycle proceeds.
func (c *Checker) RunOnce(ctx context.Context) {
	staff, err := c.employees.List(ctx)
	if err != nil {
		slog.Warn("notification cycle aborted, employee listing failed", "err", err)
		return
	}

	existing, err := c.existingForDedup(ctx)
	if err != nil {
		slog.Warn("notification cycle aborted, dedup lookup failed", "err", err)
		return
	}

	today := time.Now()
	for _, employee := range staff {
		for _, candidate := range Evaluate(employee, today, c.cfg.Windows) {
			if !ShouldCreate(candidate, existing) {
				continue
			}
			notification := buildNotification(employee, candidate)
			id, err := c.store.Create(ctx, notification)
			if err != nil {
				slog.Warn("notification create failed", "employeeId", employee.ID, "type", candidate.Type, "err", err)
				continue
			}
			notification.ID = id
			existing = append(existing, notification)
			slog.Info("compliance notification created", "employeeId", employee.ID, "type", candidate.Type, "dueDate", candidate.DueDate.Format("2006-01-02"))
			c.sendEmail(ctx, employee, notification)
		}
	}

	pending, err := c.store.Pending(ctx)
	if err != nil {
		slog.Warn("pending notification count failed", "err", err)
		return
	}
	if c.cfg.Report != nil {
		c.cfg.Report(len(pending))
	}
	slog.Debug("notification cycle finished", "pending", len(pending))
}

func (c *Checker) existingForDedup(ctx context.Context) ([]Notification, error) {
	if c.cfg.DedupHistory {
		return c.store.All(ctx)
	}
	return c.store.Pending(ctx)
}

func (c *Checker) sendEmail(ctx context.Context, employee employees.Employee, notification Notification) {
	if c.mailer == nil || employee.Email == "" {
		return
	}
	if err := c.mailer.Send(ctx, c.cfg.EmailFrom, employee.Email, notification.Title, notification.Message); err != nil {
		slog.Warn("notification email send failed", "employeeId", employee.ID, "err", err)
	}
}

func buildNotification(employee employees.Employee, candidate CandidateEvent) Notification {
	name := employee.FullName()
	due := candidate.DueDate.Format("2006-01-02")

	var title, message string
	switch candidate.Type {
	case TypeContractExpiry:
		title = fmt.Sprintf("Contract Expiring Soon - %s", name)
		message = fmt.Sprintf("Contract for %s expires on %s (%d days remaining)", name, due, candidate.DaysRemaining)
	case TypeMedicalExam:
		title = fmt.Sprintf("Medical Exam Due - %s", name)
		message = fmt.Sprintf("Medical exam for %s is due on %s (%d days remaining)", name, due, candidate.DaysRemaining)
	case TypeSafetyTraining:
		title = fmt.Sprintf("Safety Training Due - %s", name)
		message = fmt.Sprintf("Safety training for %s is due on %s (%d days remaining)", name, due, candidate.DaysRemaining)
	default:
		title = fmt.Sprintf("%s - %s", candidate.Type, name)
		message = fmt.Sprintf("%s for %s is due on %s (%d days remaining)", candidate.Type, name, due, candidate.DaysRemaining)
	}

	employeeID := employee.ID
	dueDate := candidate.DueDate
	return Notification{
		EmployeeID: &employeeID,
		Type:       candidate.Type,
		Title:      title,
		Message:    message,
		DueDate:    &dueDate,
	}
}
