package leavehandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/kalarp/employee-management-system/internal/domain/leave"
	"github.com/kalarp/employee-management-system/internal/platform/db"
	"github.com/kalarp/employee-management-system/internal/transport/http/middleware"
)

type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeStore struct {
	requests map[int64]leave.LeaveRequest
	balances map[int64]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{requests: map[int64]leave.LeaveRequest{}, balances: map[int64]int{}}
}

func (f *fakeStore) Create(_ context.Context, request leave.LeaveRequest) (int64, error) {
	id := int64(len(f.requests) + 1)
	request.ID = id
	request.Status = leave.StatusPending
	f.requests[id] = request
	return id, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, db.ErrNotFound
	}
	return request, nil
}

func (f *fakeStore) List(_ context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (f *fakeStore) BeginTx(context.Context) (pgx.Tx, error) {
	return fakeTx{}, nil
}

func (f *fakeStore) GetForUpdateTx(ctx context.Context, _ pgx.Tx, id int64) (leave.LeaveRequest, error) {
	return f.Get(ctx, id)
}

func (f *fakeStore) MarkApprovedTx(_ context.Context, _ pgx.Tx, id int64, approver string, at time.Time) error {
	request := f.requests[id]
	request.Status = leave.StatusApproved
	request.ApprovedBy = &approver
	request.ApprovedDate = &at
	f.requests[id] = request
	return nil
}

func (f *fakeStore) MarkRejectedTx(_ context.Context, _ pgx.Tx, id int64, reason string, _ time.Time) error {
	request := f.requests[id]
	request.Status = leave.StatusRejected
	request.RejectionReason = reason
	f.requests[id] = request
	return nil
}

func (f *fakeStore) AdjustBalanceTx(_ context.Context, _ pgx.Tx, employeeID int64, delta int) error {
	f.balances[employeeID] += delta
	return nil
}

// withIdentity plants an authenticated identity the way the auth
// middleware would.
func withIdentity(email string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithIdentity(r.Context(), middleware.Identity{Email: email})))
		})
	}
}

func newTestServer(store leave.StoreAPI) *httptest.Server {
	router := chi.NewRouter()
	router.Use(withIdentity("hr@example.com"))
	NewHandler(leave.NewService(store, nil)).RegisterRoutes(router)
	return httptest.NewServer(router)
}

func TestCreateLeaveRequest(t *testing.T) {
	store := newFakeStore()
	ts := newTestServer(store)
	defer ts.Close()

	body := `{"employeeId":4,"leaveType":"Vacation","startDate":"2025-07-01","endDate":"2025-07-10","daysCount":8}`
	resp, err := http.Post(ts.URL+"/leave/requests", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if store.requests[1].Status != leave.StatusPending {
		t.Fatalf("new request should be pending, got %s", store.requests[1].Status)
	}
}

func TestCreateLeaveRequestValidation(t *testing.T) {
	ts := newTestServer(newFakeStore())
	defer ts.Close()

	tests := []struct {
		name string
		body string
	}{
		{"end before start", `{"employeeId":4,"leaveType":"Vacation","startDate":"2025-07-10","endDate":"2025-07-01","daysCount":8}`},
		{"zero days", `{"employeeId":4,"leaveType":"Vacation","startDate":"2025-07-01","endDate":"2025-07-10","daysCount":0}`},
		{"unknown type", `{"employeeId":4,"leaveType":"Sabbatical","startDate":"2025-07-01","endDate":"2025-07-10","daysCount":8}`},
		{"bad date", `{"employeeId":4,"leaveType":"Vacation","startDate":"July 1st","endDate":"2025-07-10","daysCount":8}`},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/leave/requests", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestApproveRecordsApprover(t *testing.T) {
	store := newFakeStore()
	store.requests[1] = leave.LeaveRequest{ID: 1, EmployeeID: 4, DaysCount: 5, Status: leave.StatusPending}
	ts := newTestServer(store)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/leave/requests/1/approve", "application/json", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	approved := store.requests[1]
	if approved.Status != leave.StatusApproved {
		t.Fatalf("expected approved status, got %s", approved.Status)
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != "hr@example.com" {
		t.Fatalf("approver not taken from identity: %v", approved.ApprovedBy)
	}
	if store.balances[4] != -5 {
		t.Fatalf("expected balance delta -5, got %d", store.balances[4])
	}
}

func TestApproveNonPendingConflicts(t *testing.T) {
	store := newFakeStore()
	store.requests[1] = leave.LeaveRequest{ID: 1, EmployeeID: 4, DaysCount: 5, Status: leave.StatusRejected}
	ts := newTestServer(store)
	defer ts.Close()

	for _, path := range []string{"/leave/requests/1/approve", "/leave/requests/99/approve"} {
		resp, err := http.Post(ts.URL+path, "application/json", nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusConflict {
			t.Fatalf("%s: expected 409, got %d", path, resp.StatusCode)
		}
	}
}

func TestRejectWithReason(t *testing.T) {
	store := newFakeStore()
	store.requests[1] = leave.LeaveRequest{ID: 1, EmployeeID: 4, DaysCount: 5, Status: leave.StatusPending}
	ts := newTestServer(store)
	defer ts.Close()

	body := `{"reason":"project deadline"}`
	resp, err := http.Post(ts.URL+"/leave/requests/1/reject", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	rejected := store.requests[1]
	if rejected.Status != leave.StatusRejected || rejected.RejectionReason != "project deadline" {
		t.Fatalf("unexpected request state: %+v", rejected)
	}
	if store.balances[4] != 0 {
		t.Fatalf("rejection must not touch balance, got %d", store.balances[4])
	}
}

func TestListFilterByStatus(t *testing.T) {
	store := newFakeStore()
	store.requests[1] = leave.LeaveRequest{ID: 1, Status: leave.StatusPending}
	store.requests[2] = leave.LeaveRequest{ID: 2, Status: leave.StatusApproved}
	ts := newTestServer(store)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/leave/requests?status=Pending")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Data []leave.LeaveRequest `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != 1 {
		t.Fatalf("unexpected filter result: %+v", envelope.Data)
	}
}
