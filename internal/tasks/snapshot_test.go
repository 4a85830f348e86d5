package tasks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/freightops/manifest/internal/tasks"
)

func TestSnapshotFetch(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tasks":[{"id":"` + id.String() + `","type":"Shipment","po_number":"PO-1001","status":"Open","due_date":"2026-09-15T00:00:00Z","created_at":"2026-08-01T00:00:00Z"}]}`))
	}))
	defer srv.Close()

	snap := tasks.NewSnapshotter(srv.URL, 5*time.Second)
	items, err := snap.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("got %d tasks, want 1", len(items))
	}
	if items[0].ID != id {
		t.Errorf("ID = %v, want %v", items[0].ID, id)
	}
	if items[0].PONumber != "PO-1001" {
		t.Errorf("PONumber = %q", items[0].PONumber)
	}
	if items[0].Status != tasks.StatusOpen {
		t.Errorf("Status = %q", items[0].Status)
	}
}

func TestSnapshotNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	snap := tasks.NewSnapshotter(srv.URL, 5*time.Second)
	if _, err := snap.Snapshot(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestSnapshotUnreachable(t *testing.T) {
	snap := tasks.NewSnapshotter("http://127.0.0.1:1/tasks", 500*time.Millisecond)
	if _, err := snap.Snapshot(context.Background()); err == nil {
		t.Error("expected error for unreachable endpoint")
	}
}

func TestSnapshotMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	snap := tasks.NewSnapshotter(srv.URL, 5*time.Second)
	if _, err := snap.Snapshot(context.Background()); err == nil {
		t.Error("expected error for malformed body")
	}
}

func TestRenderSnapshot(t *testing.T) {
	items := []tasks.Task{
		{ID: uuid.New(), Type: "Shipment", PONumber: "PO-2002", Status: tasks.StatusOpen},
	}

	rendered := tasks.RenderSnapshot(items)
	if !strings.HasPrefix(rendered, "The current task table is:\n") {
		t.Errorf("missing header: %q", rendered)
	}
	if !strings.Contains(rendered, "PO-2002") {
		t.Errorf("missing task data: %q", rendered)
	}
}

func TestRenderSnapshotEmpty(t *testing.T) {
	rendered := tasks.RenderSnapshot(nil)
	if !strings.Contains(rendered, `"tasks": []`) {
		t.Errorf("nil tasks should render empty array: %q", rendered)
	}
}
