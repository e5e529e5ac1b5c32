package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Name":     "Name",
	"Email":    "Email",
	"Password": "Password",
	"Role":     "Role",
	"SkillIDs": "Skills",

	// Job offer fields
	"Title":        "Title",
	"Description":  "Description",
	"Location":     "Location",
	"ContractType": "Contract type",
	"Salary":       "Salary",
	"Status":       "Status",

	// Application fields
	"CoverLetter": "Cover letter",
	"JobOfferID":  "Job offer",
	"CV":          "CV file",

	// Profile fields
	"PhoneNumber": "Phone number",
	"Image":       "Profile image",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s: Invalid email format", label)

	case "gte":
		return fmt.Sprintf("%s: Must be %s or more", label, param)

	case "valid_name":
		return fmt.Sprintf("%s: Only letters, spaces, and common punctuation are allowed", label)

	case "valid_phone":
		return fmt.Sprintf("%s: Invalid phone number (7-15 digits, with or without +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: Emoji and special symbols are not allowed", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
