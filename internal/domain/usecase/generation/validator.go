package generation

import (
	"encoding/json"
	"io"
	"strings"

	"packmate-api/internal/domain/entity"
	"packmate-api/internal/domain/model"
)

// ValidateResponse parses and validates the raw completion text into an
// ordered packing list. Category order follows the order of appearance in
// the raw JSON. Every item comes back with packed forced to false; quantity
// is accepted as any number, looser than the inbound edit schema on purpose.
func ValidateResponse(raw string) (entity.PackingListContent, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))

	token, err := decoder.Token()
	if err != nil {
		return nil, &model.MalformedOutputError{Excerpt: model.RawExcerpt(raw)}
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, &model.MalformedOutputError{Excerpt: model.RawExcerpt(raw)}
	}

	content := make(entity.PackingListContent, 0)
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, &model.MalformedOutputError{Excerpt: model.RawExcerpt(raw)}
		}
		category := keyToken.(string)

		var rawItems json.RawMessage
		if err := decoder.Decode(&rawItems); err != nil {
			return nil, &model.MalformedOutputError{Excerpt: model.RawExcerpt(raw)}
		}

		items, err := validateItems(category, rawItems)
		if err != nil {
			return nil, err
		}
		content = append(content, entity.PackingListCategory{Name: category, Items: items})
	}

	if _, err := decoder.Token(); err != nil {
		return nil, &model.MalformedOutputError{Excerpt: model.RawExcerpt(raw)}
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, &model.MalformedOutputError{Excerpt: model.RawExcerpt(raw)}
	}

	return content, nil
}

func validateItems(category string, raw json.RawMessage) ([]entity.PackingItem, error) {
	var rawList []json.RawMessage
	if err := json.Unmarshal(raw, &rawList); err != nil {
		return nil, &model.InvalidCategoryError{Category: category}
	}

	items := make([]entity.PackingItem, 0, len(rawList))
	for _, rawItem := range rawList {
		var fields map[string]any
		if err := json.Unmarshal(rawItem, &fields); err != nil {
			return nil, &model.InvalidItemError{Category: category}
		}

		name, nameOk := fields["name"].(string)
		quantity, quantityOk := fields["quantity"].(float64)
		if !nameOk || name == "" || !quantityOk {
			return nil, &model.InvalidItemError{Category: category}
		}

		items = append(items, entity.PackingItem{
			Name:     name,
			Quantity: quantity,
			Packed:   false,
		})
	}

	return items, nil
}
