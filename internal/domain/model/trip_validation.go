package model

import (
	"regexp"
	"strings"
	"time"

	"packmate-api/internal/domain/entity"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateTripFields checks the common trip input fields shared by trip
// creation and packing list generation.
func ValidateTripFields(location string, startDate string, endDate string, accommodation string, activityLevel string) error {
	if len(strings.TrimSpace(location)) < 2 {
		return &InputValidationError{Field: "location", Message: "must be at least 2 characters"}
	}
	if err := validateDate("startDate", startDate); err != nil {
		return err
	}
	if err := validateDate("endDate", endDate); err != nil {
		return err
	}
	if endDate < startDate {
		return &InputValidationError{Field: "endDate", Message: "must not be before startDate"}
	}
	if !entity.ValidAccommodation(accommodation) {
		return &InputValidationError{Field: "accommodation", Message: "must be one of hotel, hostel, airbnb, tent, other"}
	}
	if !entity.ValidActivityLevel(activityLevel) {
		return &InputValidationError{Field: "activityLevel", Message: "must be one of light, moderate, intense"}
	}
	return nil
}

func validateDate(field string, value string) error {
	if !datePattern.MatchString(value) {
		return &InputValidationError{Field: field, Message: "must be a YYYY-MM-DD date"}
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return &InputValidationError{Field: field, Message: "must be a valid calendar date"}
	}
	return nil
}
