package notificationshandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/employees"
	"github.com/kalarp/employee-management-system/internal/domain/notifications"
	"github.com/kalarp/employee-management-system/internal/platform/db"
)

type fakeStore struct {
	items  map[int64]notifications.Notification
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[int64]notifications.Notification{}, nextID: 1}
}

func (f *fakeStore) Create(_ context.Context, notification notifications.Notification) (int64, error) {
	id := f.nextID
	f.nextID++
	notification.ID = id
	f.items[id] = notification
	return id, nil
}

func (f *fakeStore) Pending(_ context.Context) ([]notifications.Notification, error) {
	var list []notifications.Notification
	for _, item := range f.items {
		if !item.IsRead {
			list = append(list, item)
		}
	}
	return list, nil
}

func (f *fakeStore) All(_ context.Context) ([]notifications.Notification, error) {
	var list []notifications.Notification
	for _, item := range f.items {
		list = append(list, item)
	}
	return list, nil
}

func (f *fakeStore) CountPending(ctx context.Context) (int, error) {
	pending, err := f.Pending(ctx)
	return len(pending), err
}

func (f *fakeStore) MarkRead(_ context.Context, id int64) error {
	item, ok := f.items[id]
	if !ok {
		return db.ErrNotFound
	}
	item.IsRead = true
	f.items[id] = item
	return nil
}

type fakeEmployees struct {
	staff []employees.Employee
}

func (f *fakeEmployees) List(_ context.Context) ([]employees.Employee, error) {
	return f.staff, nil
}

func newTestServer(store *fakeStore, source *fakeEmployees, now time.Time) *httptest.Server {
	service := notifications.New(store)
	checker := notifications.NewChecker(source, store, nil, notifications.CheckerConfig{
		Windows: notifications.WarningWindows{Contract: 30, Medical: 30, Safety: 30},
	})
	router := chi.NewRouter()
	handler := NewHandler(service, checker)
	handler.Now = func() time.Time { return now }
	handler.RegisterRoutes(router)
	return httptest.NewServer(router)
}

func TestListFlagsOverdue(t *testing.T) {
	store := newFakeStore()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -3)
	future := now.AddDate(0, 0, 5)
	store.items[1] = notifications.Notification{ID: 1, Title: "late", DueDate: &past}
	store.items[2] = notifications.Notification{ID: 2, Title: "soon", DueDate: &future}
	store.items[3] = notifications.Notification{ID: 3, Title: "read", DueDate: &past, IsRead: true}
	ts := newTestServer(store, &fakeEmployees{}, now)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/notifications")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data []struct {
			ID        int64 `json:"id"`
			IsOverdue bool  `json:"isOverdue"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected 2 pending notifications, got %d", len(envelope.Data))
	}
	overdue := map[int64]bool{}
	for _, item := range envelope.Data {
		overdue[item.ID] = item.IsOverdue
	}
	if !overdue[1] || overdue[2] {
		t.Fatalf("unexpected overdue flags: %v", overdue)
	}
}

func TestMarkReadNotFound(t *testing.T) {
	ts := newTestServer(newFakeStore(), &fakeEmployees{}, time.Now())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/notifications/99/read", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestManualCheckCreatesNotifications(t *testing.T) {
	store := newFakeStore()
	contractEnd := time.Now().AddDate(0, 0, 10)
	source := &fakeEmployees{staff: []employees.Employee{
		{ID: 1, FirstName: "Anna", LastName: "Nowak", ContractEndDate: &contractEnd},
	}}
	ts := newTestServer(store, source, time.Now())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/notifications/check", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Pending int `json:"pending"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if envelope.Data.Pending != 1 {
		t.Fatalf("expected 1 pending after check, got %d", envelope.Data.Pending)
	}
}
