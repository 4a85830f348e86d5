package classifications

import (
	"net/url"

	"github.com/freightops/manifest/pkg/query"
	"github.com/freightops/manifest/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "classifications", "c").
	Project("id", "ID").
	Project("hs_code", "HSCode").
	Project("confidence", "Confidence").
	Project("product_title", "ProductTitle").
	Project("product_description", "ProductDescription").
	Project("first_two_digits", "FirstTwoDigits").
	Project("broader_description", "BroaderDescription").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for classification queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	HSCode         *string `json:"hs_code,omitempty"`
	FirstTwoDigits *string `json:"first_two_digits,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("HSCode", f.HSCode).
		WhereEquals("FirstTwoDigits", f.FirstTwoDigits)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("hs_code"); c != "" {
		f.HSCode = &c
	}

	if d := values.Get("first_two_digits"); d != "" {
		f.FirstTwoDigits = &d
	}

	return f
}

func scanClassification(s repository.Scanner) (Classification, error) {
	var c Classification

	err := s.Scan(
		&c.ID,
		&c.HSCode,
		&c.Confidence,
		&c.ProductTitle,
		&c.ProductDescription,
		&c.FirstTwoDigits,
		&c.BroaderDescription,
		&c.CreatedAt,
	)

	return c, err
}
