package chat_test

import (
	"errors"
	"testing"

	"github.com/freightops/manifest/internal/chat"
)

const validPayload = `{
	"hs_code": "8205.40.00",
	"confidence": 95,
	"product_title": "Screwdrivers",
	"product_description": "Hand-operated screwdrivers with plastic handles",
	"first_two_digits": "82",
	"broader_description": "Tools, implements, cutlery of base metal"
}`

func TestExtractPayload(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		payload, err := chat.ExtractPayload(validPayload)
		if err != nil {
			t.Fatalf("ExtractPayload error: %v", err)
		}
		if payload.HSCode != "8205.40.00" {
			t.Errorf("HSCode = %q", payload.HSCode)
		}
		if payload.Confidence != 95 {
			t.Errorf("Confidence = %v, want 95", payload.Confidence)
		}
		if payload.FirstTwoDigits != "82" {
			t.Errorf("FirstTwoDigits = %q, want 82", payload.FirstTwoDigits)
		}
	})

	t.Run("object embedded in prose", func(t *testing.T) {
		clean := "Here is the classification: " + validPayload + " Let me know if you need more."
		payload, err := chat.ExtractPayload(clean)
		if err != nil {
			t.Fatalf("ExtractPayload error: %v", err)
		}
		if payload.ProductTitle != "Screwdrivers" {
			t.Errorf("ProductTitle = %q", payload.ProductTitle)
		}
	})

	t.Run("fractional confidence", func(t *testing.T) {
		clean := `{"hs_code":"0101.21","confidence":0.87,"product_title":"t","product_description":"d","first_two_digits":"01","broader_description":"b"}`
		payload, err := chat.ExtractPayload(clean)
		if err != nil {
			t.Fatalf("ExtractPayload error: %v", err)
		}
		if payload.Confidence != 0.87 {
			t.Errorf("Confidence = %v, want 0.87", payload.Confidence)
		}
	})

	t.Run("no object region", func(t *testing.T) {
		_, err := chat.ExtractPayload("I could not identify a product in that description.")
		if !errors.Is(err, chat.ErrNoPayload) {
			t.Errorf("error = %v, want ErrNoPayload", err)
		}
	})

	t.Run("malformed JSON region", func(t *testing.T) {
		_, err := chat.ExtractPayload(`{"hs_code": "8205.40", "confidence": }`)
		if !errors.Is(err, chat.ErrPayloadParse) {
			t.Errorf("error = %v, want ErrPayloadParse", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		clean := `{"hs_code":"8205.40","product_title":"t","product_description":"d","first_two_digits":"82","broader_description":"b"}`
		_, err := chat.ExtractPayload(clean)
		if !errors.Is(err, chat.ErrPayloadInvalid) {
			t.Errorf("error = %v, want ErrPayloadInvalid", err)
		}
	})

	t.Run("mistyped confidence", func(t *testing.T) {
		clean := `{"hs_code":"8205.40","confidence":"high","product_title":"t","product_description":"d","first_two_digits":"82","broader_description":"b"}`
		_, err := chat.ExtractPayload(clean)
		if !errors.Is(err, chat.ErrPayloadInvalid) {
			t.Errorf("error = %v, want ErrPayloadInvalid", err)
		}
	})

	t.Run("confidence out of range", func(t *testing.T) {
		clean := `{"hs_code":"8205.40","confidence":140,"product_title":"t","product_description":"d","first_two_digits":"82","broader_description":"b"}`
		_, err := chat.ExtractPayload(clean)
		if !errors.Is(err, chat.ErrPayloadInvalid) {
			t.Errorf("error = %v, want ErrPayloadInvalid", err)
		}
	})

	t.Run("negative confidence", func(t *testing.T) {
		clean := `{"hs_code":"8205.40","confidence":-1,"product_title":"t","product_description":"d","first_two_digits":"82","broader_description":"b"}`
		_, err := chat.ExtractPayload(clean)
		if !errors.Is(err, chat.ErrPayloadInvalid) {
			t.Errorf("error = %v, want ErrPayloadInvalid", err)
		}
	})
}
