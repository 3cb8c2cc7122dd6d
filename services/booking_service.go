package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/builders"
	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"
	"github.com/mikosha12/Hulu-beand-mern-b/validator"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// PaymentIntent is the gateway's view of one payment
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Status       string
	Metadata     map[string]string
}

const PaymentSucceeded = string(stripe.PaymentIntentStatusSucceeded)

type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, metadata map[string]string) (*PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

type StripeGateway struct {
	sc       *client.API
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	return &StripeGateway{sc: client.New(secretKey, nil), currency: currency}
}

func fromStripe(pi *stripe.PaymentIntent) *PaymentIntent {
	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, metadata map[string]string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(g.currency),
		Metadata: metadata,
	}
	params.Context = ctx

	start := time.Now()
	pi, err := g.sc.PaymentIntents.New(params)
	metrics.ObserveExternal("stripe", "payment_intents.create", stripeStatus(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	return fromStripe(pi), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	start := time.Now()
	pi, err := g.sc.PaymentIntents.Get(id, params)
	metrics.ObserveExternal("stripe", "payment_intents.get", stripeStatus(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	return fromStripe(pi), nil
}

func stripeStatus(err error) int {
	if err == nil {
		return 200
	}
	if serr, ok := err.(*stripe.Error); ok && serr.HTTPStatusCode != 0 {
		return serr.HTTPStatusCode
	}
	return 0
}

// PaymentRecorder books the money side of a confirmed stay
type PaymentRecorder interface {
	Record(ctx context.Context, booking models.Booking, hotel *models.Hotel, kind string) (*models.Transaction, error)
}

type BookingServiceOptions struct {
	Hotels       repository.HotelRepository
	Gateway      PaymentGateway
	Transactions PaymentRecorder
	// Cache is the search cache, invalidated once a booking lands
	Cache  *Cache
	Logger logger.Logger
}

type BookingService struct {
	hotels       repository.HotelRepository
	gateway      PaymentGateway
	transactions PaymentRecorder
	cache        *Cache
	logger       logger.Logger
	now          func() time.Time
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &BookingService{
		hotels:       opts.Hotels,
		gateway:      opts.Gateway,
		transactions: opts.Transactions,
		cache:        opts.Cache,
		logger:       log,
		now:          time.Now,
	}
}

// CreatePaymentIntent prices a stay of nights at hotelID and opens a payment
// for it with the gateway
func (s *BookingService) CreatePaymentIntent(ctx context.Context, session models.Session, hotelID string, input dto.PaymentIntentInput) (*dto.PaymentIntentResponse, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}
	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if s.gateway == nil {
		return nil, apperrors.Upstream("Payments are not configured", nil)
	}

	totalCost := round2(hotel.PricePerNight * float64(input.NumberOfNights))
	intent, err := s.gateway.CreateIntent(ctx, int64(math.Round(totalCost*100)), map[string]string{
		"hotelId": hotel.ID,
		"userId":  session.UserID,
	})
	if err != nil {
		return nil, apperrors.Upstream("Error creating payment intent", err)
	}

	return &dto.PaymentIntentResponse{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		TotalCost:       totalCost,
	}, nil
}

// ConfirmBooking stores the stay once its payment has gone through. A payment
// intent books at most one stay; replaying it returns a conflict.
func (s *BookingService) ConfirmBooking(ctx context.Context, session models.Session, hotelID string, input dto.BookingInput) (*models.Booking, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}
	if s.gateway == nil {
		return nil, apperrors.Upstream("Payments are not configured", nil)
	}

	intent, err := s.gateway.GetIntent(ctx, input.PaymentIntentID)
	if err != nil {
		return nil, apperrors.Upstream("Error retrieving payment intent", err)
	}
	if intent.Metadata["hotelId"] != hotelID || intent.Metadata["userId"] != session.UserID {
		return nil, apperrors.Validation("Payment intent mismatch")
	}
	if intent.Status != PaymentSucceeded {
		return nil, apperrors.Validation(fmt.Sprintf("Payment intent not succeeded. Status: %s", intent.Status))
	}

	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	booking := builders.NewBookingBuilder().
		WithUser(session.UserID).
		WithGuestInfo(input.FirstName, input.LastName, input.Email).
		WithGuests(input.AdultCount, input.ChildCount).
		WithStay(input.CheckIn, input.CheckOut).
		WithPayment(intent.ID, intent.Amount).
		CreatedAt(s.now()).
		Build()
	if err := s.hotels.AppendBooking(ctx, hotelID, booking); err != nil {
		return nil, err
	}
	if err := InvalidateSearchCache(ctx, s.cache); err != nil {
		s.logger.Error("invalidate search cache: %v", err)
	}

	if s.transactions != nil {
		if _, err := s.transactions.Record(ctx, booking, hotel, constants.TransactionPayment); err != nil {
			s.logger.Error("record payment of booking %s: %v", booking.ID, err)
		}
	}
	return &booking, nil
}

// ListMyBookings returns the hotels the user stayed at, each carrying only
// that user's bookings
func (s *BookingService) ListMyBookings(ctx context.Context, userID string) ([]models.Hotel, error) {
	hotels, err := s.hotels.ListBookedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range hotels {
		hotels[i].Bookings = hotels[i].BookingsOf(userID)
	}
	return hotels, nil
}
