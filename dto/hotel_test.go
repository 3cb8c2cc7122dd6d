package dto

import (
	"testing"

	"github.com/mikosha12/Hulu-beand-mern-b/models"

	"github.com/stretchr/testify/assert"
)

func hotelFixture() models.Hotel {
	return models.Hotel{
		Name:          "Grand Inn",
		City:          "Addis Ababa",
		Country:       "Ethiopia",
		Facilities:    []string{"Spa"},
		PricePerNight: 120,
	}
}

func TestHotelInput_Location(t *testing.T) {
	lat, lng := 9.03, 38.74
	assert.Equal(t, models.Location{Latitude: 9.03, Longitude: 38.74}, HotelInput{Latitude: &lat, Longitude: &lng}.Location())
	assert.True(t, HotelInput{Latitude: &lat}.Location().IsZero())
}
