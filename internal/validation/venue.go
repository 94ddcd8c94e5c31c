package validation

import "unicode/utf8"

// VenueInput is the partial record from the venue-details panel. Every field
// is optional.
type VenueInput struct {
	VenueName     *string
	VenueAddress  *string
	VenueMapsLink *string
}

// ValidateVenue checks the venue panel fields.
func ValidateVenue(in VenueInput) ValidationResult {
	var errs []ValidationError

	if in.VenueName != nil && utf8.RuneCountInString(*in.VenueName) > 200 {
		errs = append(errs, ValidationError{Field: "venue_name", Message: "Venue name must be at most 200 characters"})
	}

	if in.VenueAddress != nil && utf8.RuneCountInString(*in.VenueAddress) > 500 {
		errs = append(errs, ValidationError{Field: "venue_address", Message: "Venue address must be at most 500 characters"})
	}

	if in.VenueMapsLink != nil && !IsValidURL(*in.VenueMapsLink) {
		errs = append(errs, ValidationError{Field: "venue_maps_link", Message: "Maps link must be a valid URL"})
	}

	return newResult(errs)
}
