package chat

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freightops/manifest/internal/classifications"
	"github.com/freightops/manifest/pkg/formatting"
)

// rawPayload mirrors classifications.Payload with pointer fields so absence
// and type mismatch are distinguishable after unmarshaling.
type rawPayload struct {
	HSCode             *string  `json:"hs_code"`
	Confidence         *float64 `json:"confidence"`
	ProductTitle       *string  `json:"product_title"`
	ProductDescription *string  `json:"product_description"`
	FirstTwoDigits     *string  `json:"first_two_digits"`
	BroaderDescription *string  `json:"broader_description"`
}

// ExtractPayload locates the outermost brace-delimited region in sanitized
// classify-mode text and parses it into a classification payload. Each
// failure mode is a distinct typed outcome: ErrNoPayload when no object
// region exists, ErrPayloadParse when the region is not valid JSON, and
// ErrPayloadInvalid when a required field is missing or mistyped.
func ExtractPayload(clean string) (*classifications.Payload, error) {
	region, ok := formatting.BraceRegion(clean)
	if !ok {
		return nil, ErrNoPayload
	}

	var raw rawPayload
	if err := json.Unmarshal([]byte(region), &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: field %s is not %s", ErrPayloadInvalid, typeErr.Field, typeErr.Type)
		}
		return nil, fmt.Errorf("%w: %v", ErrPayloadParse, err)
	}

	if err := validatePayload(&raw); err != nil {
		return nil, err
	}

	return &classifications.Payload{
		HSCode:             *raw.HSCode,
		Confidence:         *raw.Confidence,
		ProductTitle:       *raw.ProductTitle,
		ProductDescription: *raw.ProductDescription,
		FirstTwoDigits:     *raw.FirstTwoDigits,
		BroaderDescription: *raw.BroaderDescription,
	}, nil
}

func validatePayload(raw *rawPayload) error {
	required := map[string]bool{
		"hs_code":             raw.HSCode != nil,
		"confidence":          raw.Confidence != nil,
		"product_title":       raw.ProductTitle != nil,
		"product_description": raw.ProductDescription != nil,
		"first_two_digits":    raw.FirstTwoDigits != nil,
		"broader_description": raw.BroaderDescription != nil,
	}

	for field, present := range required {
		if !present {
			return fmt.Errorf("%w: missing field %s", ErrPayloadInvalid, field)
		}
	}

	// Sources report confidence on a 0-1 or 0-100 scale; both must land
	// inside [0, 100].
	if c := *raw.Confidence; c < 0 || c > 100 {
		return fmt.Errorf("%w: confidence %v out of range", ErrPayloadInvalid, c)
	}

	return nil
}
