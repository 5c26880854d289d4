package model

import (
	"fmt"
	"math"

	"packmate-api/internal/domain/entity"
)

// ValidateContent enforces the strict inbound schema on user-edited packing
// list content. Unlike the generation validator, quantities here must be
// integers of at least 1.
func ValidateContent(content entity.PackingListContent) error {
	for _, category := range content {
		if category.Name == "" {
			return &InputValidationError{Field: "content", Message: "category name must not be empty"}
		}
		for _, item := range category.Items {
			if item.Name == "" {
				return &InputValidationError{
					Field:   "content",
					Message: fmt.Sprintf("item in category %q must have a name", category.Name),
				}
			}
			if item.Quantity < 1 || item.Quantity != math.Trunc(item.Quantity) {
				return &InputValidationError{
					Field:   "content",
					Message: fmt.Sprintf("item %q must have an integer quantity of at least 1", item.Name),
				}
			}
		}
	}
	return nil
}
