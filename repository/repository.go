// Package repository declares the persistence ports shared by the gorm and
// mongo backends.
package repository

import (
	"context"
	"time"

	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
)

type HotelSort string

const (
	SortDefault    HotelSort = ""
	SortStarRating HotelSort = "starRating"
	SortPriceAsc   HotelSort = "pricePerNightAsc"
	SortPriceDesc  HotelSort = "pricePerNightDesc"
)

// HotelQuery is a backend-neutral listing filter. Nil and empty fields
// impose no constraint.
type HotelQuery struct {
	Destination string
	MinAdults   *int
	MinChildren *int
	Facilities  []string
	Types       []string
	Stars       []int
	MaxPrice    *float64
	Status      models.HotelStatus
	Sort        HotelSort
	Skip        int
	Limit       int
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	FindByID(ctx context.Context, id string) (*models.Hotel, error)
	// FindOwned resolves id only when it belongs to ownerID
	FindOwned(ctx context.Context, id, ownerID string) (*models.Hotel, error)
	// Update writes the descriptive fields; status and bookings are untouched
	Update(ctx context.Context, hotel *models.Hotel) error
	SetStatus(ctx context.Context, id string, status models.HotelStatus) error
	// TransitionStatus moves id from one status to another in a single
	// conditional write; a listing no longer in from yields a conflict
	TransitionStatus(ctx context.Context, id string, from, to models.HotelStatus) error
	// Delete removes id; a non-empty ownerID scopes the delete to that owner
	Delete(ctx context.Context, id, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]models.Hotel, error)
	ListByStatus(ctx context.Context, status models.HotelStatus) ([]models.Hotel, error)
	ListAll(ctx context.Context) ([]models.Hotel, error)
	ListBookedBy(ctx context.Context, userID string) ([]models.Hotel, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, q HotelQuery) ([]models.Hotel, int64, error)
	// AppendBooking refuses a second booking paid by the same payment intent
	AppendBooking(ctx context.Context, hotelID string, booking models.Booking) error
	// Destinations lists the distinct cities and countries on file
	Destinations(ctx context.Context) ([]string, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListAdmins(ctx context.Context) ([]models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Update writes the profile fields, role and active flag of user.ID;
	// the password hash is untouched
	Update(ctx context.Context, user *models.User) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type NotificationRepository interface {
	// UpsertMany inserts the notifications whose (hotelId, adminId) pair is
	// not stored yet and returns how many were inserted
	UpsertMany(ctx context.Context, notifications []models.Notification) (int, error)
	ListByAdmin(ctx context.Context, adminID string) ([]models.Notification, error)
	FindByID(ctx context.Context, id string) (*models.Notification, error)
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
	CountUnread(ctx context.Context, adminID string) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	List(ctx context.Context) ([]models.Transaction, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]models.Transaction, error)
	FindByID(ctx context.Context, id string) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// Store bundles one backend's repositories
type Store struct {
	Hotels        HotelRepository
	Users         UserRepository
	Notifications NotificationRepository
	Transactions  TransactionRepository
}

func HotelNotFound() error {
	return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Hotel not found", apperrors.ErrHotelNotFound)
}

func UserNotFound() error {
	return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "User not found", apperrors.ErrUserNotFound)
}

func NotificationNotFound() error {
	return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Notification not found", apperrors.ErrNotificationNotFound)
}

func TransactionNotFound() error {
	return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Transaction not found", apperrors.ErrTransactionNotFound)
}

func UserExists() error {
	return apperrors.NewAppError(apperrors.ErrCodeUserExists, "User already exists", apperrors.ErrUserAlreadyExists)
}

func StatusConflict(from models.HotelStatus) error {
	return apperrors.NewAppError(apperrors.ErrCodeConflict, "Hotel is no longer "+string(from), apperrors.ErrInvalidTransition)
}

func BookingExists() error {
	return apperrors.NewAppError(apperrors.ErrCodeConflict, "Booking already confirmed", apperrors.ErrBookingExists)
}

func DBError(message string, err error) error {
	return apperrors.NewAppError(apperrors.ErrCodeDBError, message, err)
}
