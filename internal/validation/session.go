package validation

import (
	"strings"
	"unicode/utf8"
)

// SessionInput is the candidate record from the schedule-configuration screen.
type SessionInput struct {
	Title       string
	Date        string
	StartTime   string
	EndTime     string
	Description *string
	Speaker     *string
	Venue       *string
}

// Session duration bounds in minutes.
const (
	minSessionMinutes = 15
	maxSessionMinutes = 480
)

// ValidateSession checks a session record. eventStartDate and eventEndDate
// are the owning event's date range; the in-range check only runs when both
// are non-empty and the session date itself parses. Duration checks are gated
// behind the ordering check: a session whose end does not come after its
// start reports only the ordering error.
func ValidateSession(in SessionInput, eventStartDate, eventEndDate string) ValidationResult {
	var errs []ValidationError

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs = append(errs, ValidationError{Field: "title", Message: "Session title is required"})
	case utf8.RuneCountInString(title) < 3:
		errs = append(errs, ValidationError{Field: "title", Message: "Session title must be at least 3 characters"})
	case utf8.RuneCountInString(title) > 200:
		errs = append(errs, ValidationError{Field: "title", Message: "Session title must be at most 200 characters"})
	}

	if in.StartTime == "" {
		errs = append(errs, ValidationError{Field: "start_time", Message: "Start time is required"})
	} else if !IsValidTime(in.StartTime) {
		errs = append(errs, ValidationError{Field: "start_time", Message: "Start time must be in HH:MM format"})
	}

	if in.EndTime == "" {
		errs = append(errs, ValidationError{Field: "end_time", Message: "End time is required"})
	} else if !IsValidTime(in.EndTime) {
		errs = append(errs, ValidationError{Field: "end_time", Message: "End time must be in HH:MM format"})
	}

	if in.Date == "" {
		errs = append(errs, ValidationError{Field: "date", Message: "Session date is required"})
	} else if !IsValidDate(in.Date) {
		errs = append(errs, ValidationError{Field: "date", Message: "Session date must be a valid date"})
	}

	if IsValidTime(in.StartTime) && IsValidTime(in.EndTime) {
		start := timeToMinutes(in.StartTime)
		end := timeToMinutes(in.EndTime)
		if end <= start {
			errs = append(errs, ValidationError{Field: "end_time", Message: "End time must be after start time"})
		} else if duration := end - start; duration < minSessionMinutes {
			errs = append(errs, ValidationError{Field: "end_time", Message: "Session must be at least 15 minutes"})
		} else if duration > maxSessionMinutes {
			errs = append(errs, ValidationError{Field: "end_time", Message: "Session cannot exceed 8 hours"})
		}
	}

	if date, ok := parseDate(in.Date); ok && eventStartDate != "" && eventEndDate != "" {
		rangeStart, okStart := parseDate(eventStartDate)
		rangeEnd, okEnd := parseDate(eventEndDate)
		if okStart && okEnd {
			day := dateOnly(date)
			if day.Before(dateOnly(rangeStart)) || day.After(dateOnly(rangeEnd)) {
				errs = append(errs, ValidationError{Field: "date", Message: "Session date must be within the event dates"})
			}
		}
	}

	if in.Description != nil && utf8.RuneCountInString(*in.Description) > 500 {
		errs = append(errs, ValidationError{Field: "description", Message: "Description must be at most 500 characters"})
	}

	if in.Speaker != nil && utf8.RuneCountInString(*in.Speaker) > 100 {
		errs = append(errs, ValidationError{Field: "speaker", Message: "Speaker must be at most 100 characters"})
	}

	if in.Venue != nil && utf8.RuneCountInString(*in.Venue) > 100 {
		errs = append(errs, ValidationError{Field: "venue", Message: "Venue must be at most 100 characters"})
	}

	return newResult(errs)
}
