package services

import (
	"context"
	"math"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/validator"
)

type TransactionServiceOptions struct {
	Transactions   repository.TransactionRepository
	CommissionRate float64
	Logger         logger.Logger
}

type TransactionService struct {
	transactions repository.TransactionRepository
	rate         float64
	logger       logger.Logger
	now          func() time.Time
}

func NewTransactionService(opts TransactionServiceOptions) *TransactionService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &TransactionService{
		transactions: opts.Transactions,
		rate:         opts.CommissionRate,
		logger:       log,
		now:          time.Now,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Split divides amount into the platform commission and the owner's share
func (s *TransactionService) Split(amount float64) (commission, owner float64) {
	commission = round2(amount * s.rate)
	return commission, round2(amount - commission)
}

// Record books the money movement of a booking. Refunds are stored negative.
func (s *TransactionService) Record(ctx context.Context, booking models.Booking, hotel *models.Hotel, kind string) (*models.Transaction, error) {
	if kind != constants.TransactionPayment && kind != constants.TransactionRefund {
		return nil, apperrors.Validation("Unknown transaction type")
	}
	if err := validator.ValidateAmount(booking.TotalCost); err != nil {
		return nil, err
	}

	amount := round2(booking.TotalCost)
	if kind == constants.TransactionRefund {
		amount = -amount
	}
	commission, owner := s.Split(amount)

	tx := &models.Transaction{
		BookingID:        booking.ID,
		HotelID:          hotel.ID,
		UserID:           booking.UserID,
		Amount:           amount,
		CommissionAmount: commission,
		HotelOwnerAmount: owner,
		Type:             kind,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.logger.Info("transaction %s recorded: %s %.2f for hotel %s", tx.ID, kind, amount, hotel.ID)
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.transactions.List(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	return s.transactions.FindByID(ctx, id)
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	return s.transactions.Delete(ctx, id)
}

// Revenue totals the transactions created in [from, to)
func (s *TransactionService) Revenue(ctx context.Context, from, to time.Time) (*models.RevenueSummary, error) {
	txs, err := s.transactions.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &models.RevenueSummary{From: from, To: to, Count: len(txs)}
	for _, tx := range txs {
		summary.TotalAmount += tx.Amount
		summary.TotalCommission += tx.CommissionAmount
		summary.TotalOwnerAmount += tx.HotelOwnerAmount
	}
	summary.TotalAmount = round2(summary.TotalAmount)
	summary.TotalCommission = round2(summary.TotalCommission)
	summary.TotalOwnerAmount = round2(summary.TotalOwnerAmount)
	return summary, nil
}

// Yesterday returns the revenue of the previous calendar day in UTC
func (s *TransactionService) Yesterday(ctx context.Context) (*models.RevenueSummary, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	return s.Revenue(ctx, today.AddDate(0, 0, -1), today)
}
