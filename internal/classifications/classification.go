// Package classifications implements the product classification domain:
// the structured HS-code records recovered from inference replies, their
// persistence, and the read surface the dashboard queries.
package classifications

import (
	"time"

	"github.com/google/uuid"
)

// Payload is the structured record recoverable from inference text. All
// fields are required; the extractor rejects payloads with absent or
// mistyped fields before they reach persistence. Confidence arrives on a
// 0-1 or 0-100 scale depending on the model and is stored as given.
type Payload struct {
	HSCode             string  `json:"hs_code"`
	Confidence         float64 `json:"confidence"`
	ProductTitle       string  `json:"product_title"`
	ProductDescription string  `json:"product_description"`
	FirstTwoDigits     string  `json:"first_two_digits"`
	BroaderDescription string  `json:"broader_description"`
}

// Classification is a stored classification record: a validated payload
// plus the system-assigned identifier and creation timestamp. Records are
// created at most once per successful extraction and never mutated after.
type Classification struct {
	ID                 uuid.UUID `json:"id"`
	HSCode             string    `json:"hs_code"`
	Confidence         float64   `json:"confidence"`
	ProductTitle       string    `json:"product_title"`
	ProductDescription string    `json:"product_description"`
	FirstTwoDigits     string    `json:"first_two_digits"`
	BroaderDescription string    `json:"broader_description"`
	CreatedAt          time.Time `json:"created_at"`
}
