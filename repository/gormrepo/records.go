package gormrepo

import (
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"

	"gorm.io/gorm"
)

type hotelRecord struct {
	ID            string   `gorm:"primaryKey;type:varchar(36)"`
	UserID        string   `gorm:"index;not null"`
	Name          string   `gorm:"not null"`
	City          string   `gorm:"index"`
	Country       string   `gorm:"index"`
	Description   string   `gorm:"type:text"`
	Type          string   `gorm:"index"`
	AdultCount    int      `gorm:"not null;default:0"`
	ChildCount    int      `gorm:"not null;default:0"`
	PricePerNight float64  `gorm:"index"`
	StarRating    int      `gorm:"index"`
	ImageURLs     []string `gorm:"serializer:json"`
	Latitude      float64
	Longitude     float64
	Status        string          `gorm:"index;not null"`
	Reviews       []models.Review `gorm:"serializer:json"`
	AverageRating float64
	LastUpdated   time.Time        `gorm:"index"`
	CreatedAt     time.Time        `gorm:"index"`
	Facilities    []facilityRecord `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
	Bookings      []bookingRecord  `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

func (hotelRecord) TableName() string { return "hotels" }

type facilityRecord struct {
	HotelID  string `gorm:"primaryKey;type:varchar(36)"`
	Name     string `gorm:"primaryKey;index"`
	Position int
}

func (facilityRecord) TableName() string { return "hotel_facilities" }

type bookingRecord struct {
	ID              string `gorm:"primaryKey;type:varchar(36)"`
	HotelID         string `gorm:"index;not null"`
	UserID          string `gorm:"index;not null"`
	FirstName       string
	LastName        string
	Email           string
	AdultCount      int
	ChildCount      int
	CheckIn         time.Time
	CheckOut        time.Time
	TotalCost       float64
	PaymentIntentID string `gorm:"index"`
	TicketNumber    string
	CreatedAt       time.Time
}

func (bookingRecord) TableName() string { return "hotel_bookings" }

type userRecord struct {
	ID             string `gorm:"primaryKey;type:varchar(36)"`
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	Role           int  `gorm:"index;not null"`
	IsActive       bool `gorm:"not null"`
	ProfilePicture string
	PhoneNumber    string
	Nationality    string
	CreatedAt      time.Time
}

func (userRecord) TableName() string { return "users" }

type notificationRecord struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Type      string
	Message   string    `gorm:"type:text;not null"`
	HotelID   string    `gorm:"uniqueIndex:idx_notification_hotel_admin;not null"`
	AdminID   string    `gorm:"uniqueIndex:idx_notification_hotel_admin;index;not null"`
	Read      bool      `gorm:"column:is_read;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (notificationRecord) TableName() string { return "notifications" }

type transactionRecord struct {
	ID               string `gorm:"primaryKey;type:varchar(36)"`
	BookingID        string `gorm:"index"`
	HotelID          string `gorm:"index"`
	UserID           string `gorm:"index"`
	Amount           float64
	CommissionAmount float64
	HotelOwnerAmount float64
	Type             string    `gorm:"not null"`
	CreatedAt        time.Time `gorm:"index"`
}

func (transactionRecord) TableName() string { return "transactions" }

// AutoMigrate creates or updates every table of the relational backend
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&hotelRecord{},
		&facilityRecord{},
		&bookingRecord{},
		&userRecord{},
		&notificationRecord{},
		&transactionRecord{},
	)
}

func toHotelRecord(h *models.Hotel) hotelRecord {
	rec := hotelRecord{
		ID:            h.ID,
		UserID:        h.UserID,
		Name:          h.Name,
		City:          h.City,
		Country:       h.Country,
		Description:   h.Description,
		Type:          h.Type,
		AdultCount:    h.AdultCount,
		ChildCount:    h.ChildCount,
		PricePerNight: h.PricePerNight,
		StarRating:    h.StarRating,
		ImageURLs:     h.ImageURLs,
		Latitude:      h.Location.Latitude,
		Longitude:     h.Location.Longitude,
		Status:        string(h.Status),
		Reviews:       h.Reviews,
		AverageRating: h.AverageRating,
		LastUpdated:   h.LastUpdated,
		CreatedAt:     h.CreatedAt,
	}
	rec.Facilities = toFacilityRecords(h.ID, h.Facilities)
	for _, b := range h.Bookings {
		rec.Bookings = append(rec.Bookings, toBookingRecord(h.ID, b))
	}
	return rec
}

func toFacilityRecords(hotelID string, facilities []string) []facilityRecord {
	seen := make(map[string]bool, len(facilities))
	out := make([]facilityRecord, 0, len(facilities))
	for _, f := range facilities {
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, facilityRecord{HotelID: hotelID, Name: f, Position: len(out)})
	}
	return out
}

func toBookingRecord(hotelID string, b models.Booking) bookingRecord {
	return bookingRecord{
		ID:              b.ID,
		HotelID:         hotelID,
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

func (r hotelRecord) toModel() models.Hotel {
	h := models.Hotel{
		ID:            r.ID,
		UserID:        r.UserID,
		Name:          r.Name,
		City:          r.City,
		Country:       r.Country,
		Description:   r.Description,
		Type:          r.Type,
		AdultCount:    r.AdultCount,
		ChildCount:    r.ChildCount,
		Facilities:    make([]string, 0, len(r.Facilities)),
		PricePerNight: r.PricePerNight,
		StarRating:    r.StarRating,
		ImageURLs:     r.ImageURLs,
		Location:      models.Location{Latitude: r.Latitude, Longitude: r.Longitude},
		Status:        models.HotelStatus(r.Status),
		Bookings:      make([]models.Booking, 0, len(r.Bookings)),
		Reviews:       r.Reviews,
		AverageRating: r.AverageRating,
		LastUpdated:   r.LastUpdated,
		CreatedAt:     r.CreatedAt,
	}
	if h.ImageURLs == nil {
		h.ImageURLs = []string{}
	}
	if h.Reviews == nil {
		h.Reviews = []models.Review{}
	}
	for _, f := range r.Facilities {
		h.Facilities = append(h.Facilities, f.Name)
	}
	for _, b := range r.Bookings {
		h.Bookings = append(h.Bookings, b.toModel())
	}
	return h
}

func (b bookingRecord) toModel() models.Booking {
	return models.Booking{
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

func toUserRecord(u *models.User) userRecord {
	return userRecord{
		ID:             u.ID,
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
}

func (r userRecord) toModel() models.User {
	return models.User{
		ID:             r.ID,
		Email:          r.Email,
		Password:       r.Password,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Role:           r.Role,
		IsActive:       r.IsActive,
		ProfilePicture: r.ProfilePicture,
		PhoneNumber:    r.PhoneNumber,
		Nationality:    r.Nationality,
		CreatedAt:      r.CreatedAt,
	}
}

func toNotificationRecord(n models.Notification) notificationRecord {
	return notificationRecord{
		ID:        n.ID,
		Type:      n.Type,
		Message:   n.Message,
		HotelID:   n.HotelID,
		AdminID:   n.AdminID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func (r notificationRecord) toModel() models.Notification {
	return models.Notification{
		ID:        r.ID,
		Type:      r.Type,
		Message:   r.Message,
		HotelID:   r.HotelID,
		AdminID:   r.AdminID,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
}

func toTransactionRecord(t *models.Transaction) transactionRecord {
	return transactionRecord{
		ID:               t.ID,
		BookingID:        t.BookingID,
		HotelID:          t.HotelID,
		UserID:           t.UserID,
		Amount:           t.Amount,
		CommissionAmount: t.CommissionAmount,
		HotelOwnerAmount: t.HotelOwnerAmount,
		Type:             t.Type,
		CreatedAt:        t.CreatedAt,
	}
}

func (r transactionRecord) toModel() models.Transaction {
	return models.Transaction{
		ID:               r.ID,
		BookingID:        r.BookingID,
		HotelID:          r.HotelID,
		UserID:           r.UserID,
		Amount:           r.Amount,
		CommissionAmount: r.CommissionAmount,
		HotelOwnerAmount: r.HotelOwnerAmount,
		Type:             r.Type,
		CreatedAt:        r.CreatedAt,
	}
}
