package validation

import (
	"strings"
	"time"
	"unicode/utf8"
)

// EventSetupInput is the candidate record from the event-setup screen.
// Optional fields are pointers; nil means the field was not provided.
type EventSetupInput struct {
	Name                string
	StartDate           string
	EndDate             string
	Description         *string
	PrimaryColor        *string
	AccentColor         *string
	OrganizerName       *string
	OrganizerEmail      *string
	OrganizerPhone      *string
	OrganizationName    *string
	OrganizationWebsite *string
}

// maxEventDays is the largest allowed inclusive span between start and end date.
const maxEventDays = 365

// ValidateEventSetup checks the event setup form. Every rule is evaluated;
// nothing short-circuits. The date-span check only runs once both dates parse
// and end is not before start, so a reversed range reports only the ordering
// error. now supplies the wall clock for the "start date not in the past"
// rule so callers can pin it in tests.
func ValidateEventSetup(in EventSetupInput, now time.Time) ValidationResult {
	var errs []ValidationError

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs = append(errs, ValidationError{Field: "name", Message: "Event name is required"})
	case utf8.RuneCountInString(name) < 3:
		errs = append(errs, ValidationError{Field: "name", Message: "Event name must be at least 3 characters"})
	case utf8.RuneCountInString(name) > 100:
		errs = append(errs, ValidationError{Field: "name", Message: "Event name must be at most 100 characters"})
	}

	if in.StartDate == "" {
		errs = append(errs, ValidationError{Field: "start_date", Message: "Start date is required"})
	} else if !IsValidDate(in.StartDate) {
		errs = append(errs, ValidationError{Field: "start_date", Message: "Start date must be a valid date"})
	}

	if in.EndDate == "" {
		errs = append(errs, ValidationError{Field: "end_date", Message: "End date is required"})
	} else if !IsValidDate(in.EndDate) {
		errs = append(errs, ValidationError{Field: "end_date", Message: "End date must be a valid date"})
	}

	if start, ok := parseDate(in.StartDate); ok {
		if end, ok := parseDate(in.EndDate); ok {
			startDay, endDay := dateOnly(start), dateOnly(end)
			if startDay.Before(dateOnly(now)) {
				errs = append(errs, ValidationError{Field: "start_date", Message: "Start date cannot be in the past"})
			}
			if endDay.Before(startDay) {
				errs = append(errs, ValidationError{Field: "end_date", Message: "End date must be after start date"})
			} else if spanDays(startDay, endDay) > maxEventDays {
				errs = append(errs, ValidationError{Field: "end_date", Message: "Event duration cannot exceed 365 days"})
			}
		}
	}

	if in.Description != nil && utf8.RuneCountInString(*in.Description) > 500 {
		errs = append(errs, ValidationError{Field: "description", Message: "Description must be at most 500 characters"})
	}

	if in.OrganizerEmail != nil && !IsValidEmail(*in.OrganizerEmail) {
		errs = append(errs, ValidationError{Field: "organizer_email", Message: "Organizer email must be a valid email address"})
	}

	if in.OrganizerPhone != nil && !IsValidPhone(*in.OrganizerPhone) {
		errs = append(errs, ValidationError{Field: "organizer_phone", Message: "Organizer phone must be a valid phone number"})
	}

	if in.OrganizationWebsite != nil && !IsValidURL(*in.OrganizationWebsite) {
		errs = append(errs, ValidationError{Field: "organization_website", Message: "Organization website must be a valid URL"})
	}

	if in.PrimaryColor != nil && !IsValidHexColor(*in.PrimaryColor) {
		errs = append(errs, ValidationError{Field: "primary_color", Message: "Primary color must be a valid hex color"})
	}

	if in.AccentColor != nil && !IsValidHexColor(*in.AccentColor) {
		errs = append(errs, ValidationError{Field: "accent_color", Message: "Accent color must be a valid hex color"})
	}

	if in.OrganizationName != nil && utf8.RuneCountInString(*in.OrganizationName) > 100 {
		errs = append(errs, ValidationError{Field: "organization_name", Message: "Organization name must be at most 100 characters"})
	}

	if in.OrganizerName != nil && utf8.RuneCountInString(*in.OrganizerName) > 100 {
		errs = append(errs, ValidationError{Field: "organizer_name", Message: "Organizer name must be at most 100 characters"})
	}

	return newResult(errs)
}

// spanDays returns the inclusive day span between two midnight-truncated
// dates, computed as the ceiling of the duration divided by 24h.
func spanDays(start, end time.Time) int {
	diff := end.Sub(start)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}
