package generation

import (
	"errors"
	"strings"
	"testing"

	"packmate-api/internal/domain/model"
)

func TestValidateResponseAcceptsWellFormedOutput(t *testing.T) {
	raw := `{
		"Clothing": [
			{"name": "T-shirt", "quantity": 5, "packed": true},
			{"name": "Rain jacket", "quantity": 1}
		],
		"Camping": [
			{"name": "Sleeping bag", "quantity": 1, "packed": false}
		]
	}`

	content, err := ValidateResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(content) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(content))
	}
	if content[0].Name != "Clothing" || content[1].Name != "Camping" {
		t.Errorf("category order not preserved: %s, %s", content[0].Name, content[1].Name)
	}
	for _, category := range content {
		for _, item := range category.Items {
			if item.Packed {
				t.Errorf("item %q kept packed=true", item.Name)
			}
		}
	}
	if content[0].Items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %v", content[0].Items[0].Quantity)
	}
}

func TestValidateResponseAcceptsLenientQuantities(t *testing.T) {
	// quantities outside the strict edit schema are accepted from the backend
	raw := `{"Misc": [{"name": "Sunscreen", "quantity": 0.5}, {"name": "Towel", "quantity": -1}]}`

	content, err := ValidateResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content[0].Items[0].Quantity != 0.5 || content[0].Items[1].Quantity != -1 {
		t.Errorf("quantities altered: %v", content[0].Items)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":   "here is your packing list!",
		"bare array": `[{"name": "T-shirt", "quantity": 1}]`,
		"number":     "42",
		"truncated":  `{"Clothing": [{"name": "T-shirt",`,
		"trailing":   `{"Clothing": []} extra`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateResponse(raw)
			var malformed *model.MalformedOutputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedOutputError, got %v", err)
			}
		})
	}
}

func TestValidateResponseTruncatesExcerpt(t *testing.T) {
	raw := strings.Repeat("x", 500)

	_, err := ValidateResponse(raw)
	var malformed *model.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
	if len(malformed.Excerpt) != 200 {
		t.Errorf("expected 200-char excerpt, got %d", len(malformed.Excerpt))
	}
}

func TestValidateResponseRejectsNonArrayCategory(t *testing.T) {
	raw := `{"Clothing": {"name": "T-shirt", "quantity": 1}}`

	_, err := ValidateResponse(raw)
	var invalidCategory *model.InvalidCategoryError
	if !errors.As(err, &invalidCategory) {
		t.Fatalf("expected InvalidCategoryError, got %v", err)
	}
	if invalidCategory.Category != "Clothing" {
		t.Errorf("expected category name in error, got %q", invalidCategory.Category)
	}
}

func TestValidateResponseRejectsInvalidItems(t *testing.T) {
	for name, raw := range map[string]string{
		"missing name":      `{"Clothing": [{"quantity": 1}]}`,
		"empty name":        `{"Clothing": [{"name": "", "quantity": 1}]}`,
		"string quantity":   `{"Clothing": [{"name": "T-shirt", "quantity": "one"}]}`,
		"null item":         `{"Clothing": [null]}`,
		"non-object item":   `{"Clothing": ["T-shirt"]}`,
		"missing quantity":  `{"Clothing": [{"name": "T-shirt"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateResponse(raw)
			var invalidItem *model.InvalidItemError
			if !errors.As(err, &invalidItem) {
				t.Fatalf("expected InvalidItemError, got %v", err)
			}
			if invalidItem.Category != "Clothing" {
				t.Errorf("expected category name in error, got %q", invalidItem.Category)
			}
		})
	}
}

func TestValidateResponseIsIdempotent(t *testing.T) {
	raw := `{"Clothing": [{"name": "T-shirt", "quantity": 2, "packed": true}]}`

	first, err := ValidateResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reencoded, err := first.MarshalJSON()
	if err != nil {
		t.Fatalf("failed to re-encode: %v", err)
	}

	second, err := ValidateResponse(string(reencoded))
	if err != nil {
		t.Fatalf("re-validation failed: %v", err)
	}
	if len(second) != len(first) || second[0].Items[0].Packed {
		t.Error("re-validation changed the content")
	}
}
