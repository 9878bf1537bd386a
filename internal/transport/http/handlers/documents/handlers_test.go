package documentshandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kalarp/employee-management-system/internal/domain/documents"
	"github.com/kalarp/employee-management-system/internal/platform/db"
)

type fakeStore struct {
	docs map[int64]documents.Document
}

func (f *fakeStore) Create(_ context.Context, document documents.Document) (int64, error) {
	id := int64(len(f.docs) + 1)
	document.ID = id
	f.docs[id] = document
	return id, nil
}

func (f *fakeStore) Get(_ context.Context, id int64) (documents.Document, error) {
	document, ok := f.docs[id]
	if !ok {
		return documents.Document{}, db.ErrNotFound
	}
	return document, nil
}

func (f *fakeStore) ListForEmployee(_ context.Context, employeeID int64) ([]documents.Document, error) {
	var list []documents.Document
	for _, document := range f.docs {
		if document.EmployeeID == employeeID {
			list = append(list, document)
		}
	}
	return list, nil
}

func newTestServer(store documents.StoreAPI) *httptest.Server {
	router := chi.NewRouter()
	NewHandler(nil, store).RegisterRoutes(router)
	return httptest.NewServer(router)
}

func TestDownloadServesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cert.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := &fakeStore{docs: map[int64]documents.Document{
		1: {ID: 1, EmployeeID: 2, DocumentName: "Employment Certificate - Jan Kowalski", FilePath: path},
	}}
	ts := newTestServer(store)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/documents/1/download")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected pdf content type, got %s", got)
	}
}

func TestDownloadMissingDocument(t *testing.T) {
	ts := newTestServer(&fakeStore{docs: map[int64]documents.Document{}})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/documents/5/download")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDownloadWithoutStoredFile(t *testing.T) {
	store := &fakeStore{docs: map[int64]documents.Document{
		1: {ID: 1, DocumentName: "orphan"},
	}}
	ts := newTestServer(store)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/documents/1/download")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
