package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVenue_AllFieldsOptional(t *testing.T) {
	result := ValidateVenue(VenueInput{})
	require.True(t, result.Valid)
	require.Empty(t, result.Errors)
}

func TestValidateVenue_Valid(t *testing.T) {
	in := VenueInput{
		VenueName:     strPtr("Convention Center"),
		VenueAddress:  strPtr("1 Main St, Springfield"),
		VenueMapsLink: strPtr("https://maps.example.com/?q=convention+center"),
	}
	result := ValidateVenue(in)
	require.True(t, result.Valid, "errors: %v", result.Errors)
}

func TestValidateVenue_Bounds(t *testing.T) {
	in := VenueInput{
		VenueName:     strPtr(strings.Repeat("n", 201)),
		VenueAddress:  strPtr(strings.Repeat("a", 501)),
		VenueMapsLink: strPtr("maps.example.com"),
	}
	result := ValidateVenue(in)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"Venue name must be at most 200 characters"}, fieldMessages(result, "venue_name"))
	assert.Equal(t, []string{"Venue address must be at most 500 characters"}, fieldMessages(result, "venue_address"))
	assert.Equal(t, []string{"Maps link must be a valid URL"}, fieldMessages(result, "venue_maps_link"))
}
