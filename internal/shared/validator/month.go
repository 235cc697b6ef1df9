package validator

import (
	"github.com/go-playground/validator/v10"
)

// monthLabels is the accepted range for performance-history month tags.
// The dashboard frontend renders these abbreviations verbatim.
var monthLabels = map[string]struct{}{
	"Jan": {}, "Feb": {}, "Mar": {}, "Apr": {}, "May": {}, "Jun": {},
	"Jul": {}, "Aug": {}, "Sep": {}, "Oct": {}, "Nov": {}, "Dec": {},
}

// ValidateMonthLabel validates a three-letter month abbreviation.
// This is a common validator used across multiple domains.
func ValidateMonthLabel(fl validator.FieldLevel) bool {
	_, ok := monthLabels[fl.Field().String()]
	return ok
}
