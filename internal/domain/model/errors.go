package model

import "fmt"

const rawExcerptLimit = 200

// InputValidationError indicates a malformed trip request. It is a caller
// fault and is never logged as a server error.
type InputValidationError struct {
	Field   string
	Message string
}

func (e *InputValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid trip input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid trip input: %s", e.Message)
}

// ForecastUnavailable indicates the forecast provider could not deliver
// usable data. The generation pipeline recovers from it by proceeding
// without weather context.
type ForecastUnavailable struct {
	Location string
	Cause    error
}

func (e *ForecastUnavailable) Error() string {
	return fmt.Sprintf("forecast unavailable for %s: %v", e.Location, e.Cause)
}

func (e *ForecastUnavailable) Unwrap() error {
	return e.Cause
}

// GenerationFailure indicates the generative backend returned no usable
// payload. Fatal to the pipeline.
type GenerationFailure struct {
	Cause error
}

func (e *GenerationFailure) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %v", e.Cause)
	}
	return "generation failed: backend returned an empty response"
}

func (e *GenerationFailure) Unwrap() error {
	return e.Cause
}

// MalformedOutputError indicates the generative backend's response was not a
// JSON object. Excerpt carries a truncated slice of the raw text for
// diagnostics; the full payload is never attached.
type MalformedOutputError struct {
	Excerpt string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("generated output is not a JSON object: %s", e.Excerpt)
}

// InvalidCategoryError indicates a category whose value is not an item array.
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("category %q is not an array of items", e.Category)
}

// InvalidItemError indicates an item missing a name or numeric quantity.
type InvalidItemError struct {
	Category string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item in category %q", e.Category)
}

// RawExcerpt truncates raw backend output for inclusion in error messages.
func RawExcerpt(raw string) string {
	if len(raw) > rawExcerptLimit {
		return raw[:rawExcerptLimit]
	}
	return raw
}
