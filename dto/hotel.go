package dto

import "github.com/mikosha12/Hulu-beand-mern-b/models"

// HotelInput is the body of a listing submission, as JSON or multipart form
type HotelInput struct {
	Name          string   `json:"name" form:"name" validate:"required"`
	City          string   `json:"city" form:"city" validate:"required"`
	Country       string   `json:"country" form:"country" validate:"required"`
	Description   string   `json:"description" form:"description" validate:"required"`
	Type          string   `json:"type" form:"type" validate:"required"`
	AdultCount    int      `json:"adultCount" form:"adultCount" validate:"gte=0"`
	ChildCount    int      `json:"childCount" form:"childCount" validate:"gte=0"`
	Facilities    []string `json:"facilities" form:"facilities" validate:"required,min=1,dive,required"`
	PricePerNight float64  `json:"pricePerNight" form:"pricePerNight" validate:"gt=0"`
	StarRating    int      `json:"starRating" form:"starRating" validate:"min=1,max=5"`
	ImageURLs     []string `json:"imageUrls" form:"imageUrls" validate:"omitempty,dive,url"`
	Latitude      *float64 `json:"latitude" form:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" form:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (in HotelInput) Location() models.Location {
	if in.Latitude == nil || in.Longitude == nil {
		return models.Location{}
	}
	return models.Location{Latitude: *in.Latitude, Longitude: *in.Longitude}
}

// HotelPatch carries an edit; nil fields are left unchanged
type HotelPatch struct {
	Name          *string  `json:"name" form:"name" validate:"omitempty,min=1"`
	City          *string  `json:"city" form:"city" validate:"omitempty,min=1"`
	Country       *string  `json:"country" form:"country" validate:"omitempty,min=1"`
	Description   *string  `json:"description" form:"description" validate:"omitempty,min=1"`
	Type          *string  `json:"type" form:"type" validate:"omitempty,min=1"`
	AdultCount    *int     `json:"adultCount" form:"adultCount" validate:"omitempty,gte=0"`
	ChildCount    *int     `json:"childCount" form:"childCount" validate:"omitempty,gte=0"`
	Facilities    []string `json:"facilities" form:"facilities" validate:"omitempty,min=1,dive,required"`
	PricePerNight *float64 `json:"pricePerNight" form:"pricePerNight" validate:"omitempty,gt=0"`
	StarRating    *int     `json:"starRating" form:"starRating" validate:"omitempty,min=1,max=5"`
	ImageURLs     []string `json:"imageUrls" form:"imageUrls" validate:"omitempty,dive,url"`
	Latitude      *float64 `json:"latitude" form:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" form:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Apply copies the supplied fields onto h. Images are merged by the caller.
func (p HotelPatch) Apply(h *models.Hotel) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.City != nil {
		h.City = *p.City
	}
	if p.Country != nil {
		h.Country = *p.Country
	}
	if p.Description != nil {
		h.Description = *p.Description
	}
	if p.Type != nil {
		h.Type = *p.Type
	}
	if p.AdultCount != nil {
		h.AdultCount = *p.AdultCount
	}
	if p.ChildCount != nil {
		h.ChildCount = *p.ChildCount
	}
	if len(p.Facilities) > 0 {
		h.Facilities = p.Facilities
	}
	if p.PricePerNight != nil {
		h.PricePerNight = *p.PricePerNight
	}
	if p.StarRating != nil {
		h.StarRating = *p.StarRating
	}
	if p.Latitude != nil && p.Longitude != nil {
		h.Location = models.Location{Latitude: *p.Latitude, Longitude: *p.Longitude}
	}
}
