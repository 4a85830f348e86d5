package tasks_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/freightops/manifest/internal/tasks"
)

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status tasks.Status
		want   bool
	}{
		{tasks.StatusOpen, true},
		{tasks.StatusCompleted, true},
		{tasks.Status("open"), false},
		{tasks.Status("Cancelled"), false},
		{tasks.Status(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("Status(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("type", "Shipment")
	values.Set("po_number", "PO-1001")
	values.Set("status", "Open")

	f := tasks.FiltersFromQuery(values)
	if f.Type == nil || *f.Type != "Shipment" {
		t.Errorf("Type = %v", f.Type)
	}
	if f.PONumber == nil || *f.PONumber != "PO-1001" {
		t.Errorf("PONumber = %v", f.PONumber)
	}
	if f.Status == nil || *f.Status != tasks.StatusOpen {
		t.Errorf("Status = %v", f.Status)
	}
}

func TestFiltersFromQueryIgnoresInvalidStatus(t *testing.T) {
	values := url.Values{}
	values.Set("status", "Paused")

	f := tasks.FiltersFromQuery(values)
	if f.Status != nil {
		t.Errorf("Status = %v, want nil for unrecognized value", *f.Status)
	}
}

func TestFiltersFromQueryEmpty(t *testing.T) {
	f := tasks.FiltersFromQuery(url.Values{})
	if f.Type != nil || f.PONumber != nil || f.Status != nil {
		t.Errorf("empty query produced filters: %+v", f)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{tasks.ErrNotFound, http.StatusNotFound},
		{tasks.ErrDuplicate, http.StatusConflict},
		{tasks.ErrInvalidStatus, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tasks.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
