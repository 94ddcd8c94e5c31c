package validation

import (
	"strings"
	"unicode/utf8"
)

// AttendeeInput is the candidate record from the manual-add dialog, and the
// row shape produced by the CSV import.
type AttendeeInput struct {
	Email     string
	FirstName string
	LastName  string
	Company   *string
	JobTitle  *string
	Phone     *string
}

// ValidateAttendee checks a single attendee record.
func ValidateAttendee(in AttendeeInput) ValidationResult {
	var errs []ValidationError

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs = append(errs, ValidationError{Field: "email", Message: "Email is required"})
	} else if !IsValidEmail(email) {
		errs = append(errs, ValidationError{Field: "email", Message: "Email must be a valid email address"})
	}

	errs = appendNameErrors(errs, "first_name", "First name", in.FirstName)
	errs = appendNameErrors(errs, "last_name", "Last name", in.LastName)

	if in.Company != nil && utf8.RuneCountInString(*in.Company) > 100 {
		errs = append(errs, ValidationError{Field: "company", Message: "Company must be at most 100 characters"})
	}

	if in.JobTitle != nil && utf8.RuneCountInString(*in.JobTitle) > 100 {
		errs = append(errs, ValidationError{Field: "job_title", Message: "Job title must be at most 100 characters"})
	}

	if in.Phone != nil && !IsValidPhone(*in.Phone) {
		errs = append(errs, ValidationError{Field: "phone", Message: "Phone must be a valid phone number"})
	}

	return newResult(errs)
}

// appendNameErrors applies the shared required + [2,50] length rule for name
// fields.
func appendNameErrors(errs []ValidationError, field, label, value string) []ValidationError {
	name := strings.TrimSpace(value)
	switch {
	case name == "":
		errs = append(errs, ValidationError{Field: field, Message: label + " is required"})
	case utf8.RuneCountInString(name) < 2:
		errs = append(errs, ValidationError{Field: field, Message: label + " must be at least 2 characters"})
	case utf8.RuneCountInString(name) > 50:
		errs = append(errs, ValidationError{Field: field, Message: label + " must be at most 50 characters"})
	}
	return errs
}
