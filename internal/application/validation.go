package application

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout is the diary file naming format
const DateLayout = "2006-01-02"

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "diaryDir" -> "diary directory")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"root":             "root document",
		"wikiPath":         "wiki path",
		"diaryDir":         "diary directory",
		"filetype":         "file type",
		"indentationLevel": "indentation level",
		"missingSection":   "missing section policy",
		"syntax":           "syntax",
		"file":             "file",
		"date":             "diary date",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateDate checks that value is a YYYY-MM-DD date
func ValidateDate(fieldName, value string) error {
	if _, err := time.Parse(DateLayout, value); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s in YYYY-MM-DD format, got: %s", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateNonNegative rejects negative counts
func ValidateNonNegative(fieldName string, value int) error {
	if value < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative, got: %d", formatFieldName(fieldName), value),
		}
	}
	return nil
}

// ValidateOneOf checks that value is one of allowed
func ValidateOneOf(fieldName, value string, allowed ...string) error {
	if !slices.Contains(allowed, value) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s to be one of %s, got: %s", formatFieldName(fieldName), strings.Join(allowed, ", "), value),
		}
	}
	return nil
}
