package tasks

import (
	"net/url"

	"github.com/freightops/manifest/pkg/query"
	"github.com/freightops/manifest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "tasks", "t").
	Project("id", "ID").
	Project("type", "Type").
	Project("po_number", "PONumber").
	Project("status", "Status").
	Project("due_date", "DueDate").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "DueDate",
	Descending: false,
}

// Filters contains optional filtering criteria for task queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Type     *string `json:"type,omitempty"`
	PONumber *string `json:"po_number,omitempty"`
	Status   *Status `json:"status,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereEquals("Type", f.Type).
		WhereEquals("PONumber", f.PONumber)

	if f.Status != nil {
		b.WhereEquals("Status", string(*f.Status))
	}

	return b
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("type"); t != "" {
		f.Type = &t
	}

	if p := values.Get("po_number"); p != "" {
		f.PONumber = &p
	}

	if s := Status(values.Get("status")); s.Valid() {
		f.Status = &s
	}

	return f
}

func scanTask(s repository.Scanner) (Task, error) {
	var t Task

	err := s.Scan(
		&t.ID,
		&t.Type,
		&t.PONumber,
		&t.Status,
		&t.DueDate,
		&t.CreatedAt,
	)

	return t, err
}
