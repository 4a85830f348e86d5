package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Snapshotter fetches the current task table for conversational context.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]Task, error)
}

type httpSnapshotter struct {
	url    string
	client *http.Client
}

// NewSnapshotter creates a Snapshotter that fetches the task-listing
// collaborator over HTTP. Any non-2xx response or transport error is
// reported as an error; callers treat the snapshot as a soft dependency
// and proceed without it.
func NewSnapshotter(url string, timeout time.Duration) Snapshotter {
	return &httpSnapshotter{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *httpSnapshotter) Snapshot(ctx context.Context) ([]Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build snapshot request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch task snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch task snapshot: status %d", resp.StatusCode)
	}

	var snapshot Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode task snapshot: %w", err)
	}

	return snapshot.Tasks, nil
}

// RenderSnapshot formats the task table as the human-readable system turn
// appended to a transcript before inference.
func RenderSnapshot(items []Task) string {
	if items == nil {
		items = []Task{}
	}

	pretty, err := json.MarshalIndent(Snapshot{Tasks: items}, "", "  ")
	if err != nil {
		return "The current task table is unavailable."
	}

	return fmt.Sprintf("The current task table is:\n%s", pretty)
}
