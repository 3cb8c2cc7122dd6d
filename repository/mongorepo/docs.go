package mongorepo

import (
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type hotelDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"userId"`
	Name          string             `bson:"name"`
	City          string             `bson:"city"`
	Country       string             `bson:"country"`
	Description   string             `bson:"description"`
	Type          string             `bson:"type"`
	AdultCount    int                `bson:"adultCount"`
	ChildCount    int                `bson:"childCount"`
	Facilities    []string           `bson:"facilities"`
	PricePerNight float64            `bson:"pricePerNight"`
	StarRating    int                `bson:"starRating"`
	ImageURLs     []string           `bson:"imageUrls"`
	Location      models.Location    `bson:"location"`
	Status        string             `bson:"status"`
	Bookings      []bookingDoc       `bson:"bookings"`
	Reviews       []models.Review    `bson:"reviews"`
	AverageRating float64            `bson:"averageRating"`
	LastUpdated   time.Time          `bson:"lastUpdated"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

type bookingDoc struct {
	ID              string    `bson:"_id"`
	UserID          string    `bson:"userId"`
	FirstName       string    `bson:"firstName"`
	LastName        string    `bson:"lastName"`
	Email           string    `bson:"email"`
	AdultCount      int       `bson:"adultCount"`
	ChildCount      int       `bson:"childCount"`
	CheckIn         time.Time `bson:"checkIn"`
	CheckOut        time.Time `bson:"checkOut"`
	TotalCost       float64   `bson:"totalCost"`
	PaymentIntentID string    `bson:"paymentIntentId"`
	TicketNumber    string    `bson:"ticketNumber"`
	CreatedAt       time.Time `bson:"createdAt"`
}

type userDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	Password       string             `bson:"password"`
	FirstName      string             `bson:"firstName"`
	LastName       string             `bson:"lastName"`
	Role           int                `bson:"role"`
	IsActive       bool               `bson:"isActive"`
	ProfilePicture string             `bson:"profilePicture,omitempty"`
	PhoneNumber    string             `bson:"phoneNumber,omitempty"`
	Nationality    string             `bson:"nationality,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

type notificationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Type      string             `bson:"type"`
	Message   string             `bson:"message"`
	HotelID   string             `bson:"hotelId"`
	AdminID   string             `bson:"adminId"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type transactionDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	BookingID        string             `bson:"bookingId"`
	HotelID          string             `bson:"hotelId"`
	UserID           string             `bson:"userId"`
	Amount           float64            `bson:"amount"`
	CommissionAmount float64            `bson:"commissionAmount"`
	HotelOwnerAmount float64            `bson:"hotelOwnerAmount"`
	Type             string             `bson:"type"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

// objectID parses a hex id; ok is false for ids this backend never issued
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func toHotelDoc(h *models.Hotel) hotelDoc {
	d := hotelDoc{
		UserID:        h.UserID,
		Name:          h.Name,
		City:          h.City,
		Country:       h.Country,
		Description:   h.Description,
		Type:          h.Type,
		AdultCount:    h.AdultCount,
		ChildCount:    h.ChildCount,
		Facilities:    nonNil(h.Facilities),
		PricePerNight: h.PricePerNight,
		StarRating:    h.StarRating,
		ImageURLs:     nonNil(h.ImageURLs),
		Location:      h.Location,
		Status:        string(h.Status),
		Bookings:      make([]bookingDoc, 0, len(h.Bookings)),
		Reviews:       h.Reviews,
		AverageRating: h.AverageRating,
		LastUpdated:   h.LastUpdated,
		CreatedAt:     h.CreatedAt,
	}
	if oid, ok := objectID(h.ID); ok {
		d.ID = oid
	}
	if d.Reviews == nil {
		d.Reviews = []models.Review{}
	}
	for _, b := range h.Bookings {
		d.Bookings = append(d.Bookings, toBookingDoc(b))
	}
	return d
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (d hotelDoc) toModel() models.Hotel {
	h := models.Hotel{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		Name:          d.Name,
		City:          d.City,
		Country:       d.Country,
		Description:   d.Description,
		Type:          d.Type,
		AdultCount:    d.AdultCount,
		ChildCount:    d.ChildCount,
		Facilities:    nonNil(d.Facilities),
		PricePerNight: d.PricePerNight,
		StarRating:    d.StarRating,
		ImageURLs:     nonNil(d.ImageURLs),
		Location:      d.Location,
		Status:        models.HotelStatus(d.Status),
		Bookings:      make([]models.Booking, 0, len(d.Bookings)),
		Reviews:       d.Reviews,
		AverageRating: d.AverageRating,
		LastUpdated:   d.LastUpdated,
		CreatedAt:     d.CreatedAt,
	}
	if h.Reviews == nil {
		h.Reviews = []models.Review{}
	}
	for _, b := range d.Bookings {
		h.Bookings = append(h.Bookings, b.toModel())
	}
	return h
}

func toBookingDoc(b models.Booking) bookingDoc {
	return bookingDoc{
		ID:              b.ID,
		UserID:          b.UserID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		AdultCount:      b.AdultCount,
		ChildCount:      b.ChildCount,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		TotalCost:       b.TotalCost,
		PaymentIntentID: b.PaymentIntentID,
		TicketNumber:    b.TicketNumber,
		CreatedAt:       b.CreatedAt,
	}
}

func (d bookingDoc) toModel() models.Booking {
	return models.Booking{
		ID:              d.ID,
		UserID:          d.UserID,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		AdultCount:      d.AdultCount,
		ChildCount:      d.ChildCount,
		CheckIn:         d.CheckIn,
		CheckOut:        d.CheckOut,
		TotalCost:       d.TotalCost,
		PaymentIntentID: d.PaymentIntentID,
		TicketNumber:    d.TicketNumber,
		CreatedAt:       d.CreatedAt,
	}
}

func toUserDoc(u *models.User) userDoc {
	d := userDoc{
		Email:          u.Email,
		Password:       u.Password,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           u.Role,
		IsActive:       u.IsActive,
		ProfilePicture: u.ProfilePicture,
		PhoneNumber:    u.PhoneNumber,
		Nationality:    u.Nationality,
		CreatedAt:      u.CreatedAt,
	}
	if oid, ok := objectID(u.ID); ok {
		d.ID = oid
	}
	return d
}

func (d userDoc) toModel() models.User {
	return models.User{
		ID:             d.ID.Hex(),
		Email:          d.Email,
		Password:       d.Password,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Role:           d.Role,
		IsActive:       d.IsActive,
		ProfilePicture: d.ProfilePicture,
		PhoneNumber:    d.PhoneNumber,
		Nationality:    d.Nationality,
		CreatedAt:      d.CreatedAt,
	}
}

func (d notificationDoc) toModel() models.Notification {
	return models.Notification{
		ID:        d.ID.Hex(),
		Type:      d.Type,
		Message:   d.Message,
		HotelID:   d.HotelID,
		AdminID:   d.AdminID,
		Read:      d.Read,
		CreatedAt: d.CreatedAt,
	}
}

func toTransactionDoc(t *models.Transaction) transactionDoc {
	d := transactionDoc{
		BookingID:        t.BookingID,
		HotelID:          t.HotelID,
		UserID:           t.UserID,
		Amount:           t.Amount,
		CommissionAmount: t.CommissionAmount,
		HotelOwnerAmount: t.HotelOwnerAmount,
		Type:             t.Type,
		CreatedAt:        t.CreatedAt,
	}
	if oid, ok := objectID(t.ID); ok {
		d.ID = oid
	}
	return d
}

func (d transactionDoc) toModel() models.Transaction {
	return models.Transaction{
		ID:               d.ID.Hex(),
		BookingID:        d.BookingID,
		HotelID:          d.HotelID,
		UserID:           d.UserID,
		Amount:           d.Amount,
		CommissionAmount: d.CommissionAmount,
		HotelOwnerAmount: d.HotelOwnerAmount,
		Type:             d.Type,
		CreatedAt:        d.CreatedAt,
	}
}
