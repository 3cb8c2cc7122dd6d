package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"
	"github.com/mikosha12/Hulu-beand-mern-b/validator"
)

// SubmissionNotifier tells the admins about a freshly submitted hotel
type SubmissionNotifier interface {
	NotifyAdminsOfSubmission(ctx context.Context, hotel *models.Hotel) (int, error)
}

type HotelServiceOptions struct {
	Hotels   repository.HotelRepository
	Notifier SubmissionNotifier
	Uploader MediaUploader
	Geocoder Geocoder
	Cache    *Cache
	Logger   logger.Logger
	// StrictApproval refuses to move a hotel out of Approved or Rejected
	StrictApproval bool
}

type HotelService struct {
	hotels   repository.HotelRepository
	notifier SubmissionNotifier
	uploader MediaUploader
	geocoder Geocoder
	cache    *Cache
	logger   logger.Logger
	strict   bool
	now      func() time.Time
}

func NewHotelService(opts HotelServiceOptions) *HotelService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &HotelService{
		hotels:   opts.Hotels,
		notifier: opts.Notifier,
		uploader: opts.Uploader,
		geocoder: opts.Geocoder,
		cache:    opts.Cache,
		logger:   log,
		strict:   opts.StrictApproval,
		now:      time.Now,
	}
}

func (s *HotelService) invalidate(ctx context.Context) {
	if err := InvalidateSearchCache(ctx, s.cache); err != nil {
		s.logger.Error("invalidate search cache: %v", err)
	}
}

func checkImageCount(files []ImageFile) error {
	if len(files) > constants.MaxImageFiles {
		return apperrors.ValidationFields("Too many images",
			map[string]string{"imageFiles": fmt.Sprintf("must have at most %d files", constants.MaxImageFiles)})
	}
	for _, f := range files {
		if f.Size > constants.MaxImageBytes {
			return apperrors.ValidationFields("Image is too large",
				map[string]string{"imageFiles": fmt.Sprintf("%s exceeds %d bytes", f.Name, constants.MaxImageBytes)})
		}
	}
	return nil
}

func (s *HotelService) locate(ctx context.Context, city, country string) models.Location {
	if s.geocoder == nil {
		return models.Location{}
	}
	loc, err := s.geocoder.Geocode(ctx, city+", "+country)
	if err != nil {
		s.logger.Error("geocode %s, %s: %v", city, country, err)
		return models.Location{}
	}
	return loc
}

// Submit stores a new listing owned by the caller. It always starts Pending
// and every admin is notified.
func (s *HotelService) Submit(ctx context.Context, session models.Session, input dto.HotelInput, images []ImageFile) (*models.Hotel, error) {
	if !session.Authenticated() {
		return nil, apperrors.Unauthorized("Unauthorized")
	}
	if err := validator.Struct(input); err != nil {
		return nil, err
	}
	if err := checkImageCount(images); err != nil {
		return nil, err
	}

	uploaded, err := UploadImages(ctx, s.uploader, constants.ImageUploadDir, images)
	if err != nil {
		return nil, err
	}

	location := input.Location()
	if location.IsZero() {
		location = s.locate(ctx, input.City, input.Country)
	}

	now := s.now().UTC()
	hotel := &models.Hotel{
		UserID:        session.UserID,
		Name:          input.Name,
		City:          input.City,
		Country:       input.Country,
		Description:   input.Description,
		Type:          input.Type,
		AdultCount:    input.AdultCount,
		ChildCount:    input.ChildCount,
		Facilities:    input.Facilities,
		PricePerNight: input.PricePerNight,
		StarRating:    input.StarRating,
		ImageURLs:     append(append([]string{}, input.ImageURLs...), uploaded...),
		Location:      location,
		Status:        models.HotelStatusPending,
		Bookings:      []models.Booking{},
		Reviews:       []models.Review{},
		LastUpdated:   now,
		CreatedAt:     now,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	metrics.ObserveHotel("submitted")
	s.logger.Info("hotel %s submitted by %s", hotel.ID, session.UserID)

	if s.notifier != nil {
		if _, err := s.notifier.NotifyAdminsOfSubmission(ctx, hotel); err != nil {
			s.logger.Error("notify admins of hotel %s: %v", hotel.ID, err)
		}
	}
	s.invalidate(ctx)
	return hotel, nil
}

func (s *HotelService) Approve(ctx context.Context, id string) (*models.Hotel, error) {
	return s.moveTo(ctx, id, models.HotelStatusApproved, "approved")
}

func (s *HotelService) Reject(ctx context.Context, id string) (*models.Hotel, error) {
	return s.moveTo(ctx, id, models.HotelStatusRejected, "rejected")
}

func (s *HotelService) moveTo(ctx context.Context, id string, to models.HotelStatus, event string) (*models.Hotel, error) {
	if s.strict {
		current, err := s.hotels.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !models.CanTransition(current.Status, to) {
			return nil, apperrors.Conflict(fmt.Sprintf("Hotel is already %s", current.Status))
		}
		if err := s.hotels.TransitionStatus(ctx, id, current.Status, to); err != nil {
			return nil, err
		}
	} else if err := s.hotels.SetStatus(ctx, id, to); err != nil {
		return nil, err
	}

	metrics.ObserveHotel(event)
	s.invalidate(ctx)
	return s.hotels.FindByID(ctx, id)
}

// Update edits a listing. An empty ownerID edits any hotel; otherwise only
// the owner's. The status is never changed here.
func (s *HotelService) Update(ctx context.Context, id, ownerID string, patch dto.HotelPatch, images []ImageFile) (*models.Hotel, error) {
	if err := validator.Struct(patch); err != nil {
		return nil, err
	}
	if err := checkImageCount(images); err != nil {
		return nil, err
	}

	hotel, err := s.load(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	uploaded, err := UploadImages(ctx, s.uploader, constants.ImageUploadDir, images)
	if err != nil {
		return nil, err
	}

	patch.Apply(hotel)
	if patch.ImageURLs != nil || len(uploaded) > 0 {
		hotel.ImageURLs = append(append([]string{}, patch.ImageURLs...), uploaded...)
	}
	hotel.LastUpdated = s.now().UTC()

	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	metrics.ObserveHotel("updated")
	s.invalidate(ctx)
	return hotel, nil
}

func (s *HotelService) load(ctx context.Context, id, ownerID string) (*models.Hotel, error) {
	if ownerID == "" {
		return s.hotels.FindByID(ctx, id)
	}
	return s.hotels.FindOwned(ctx, id, ownerID)
}

// Delete removes a hotel for good. Its notifications and transactions stay.
func (s *HotelService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.hotels.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	metrics.ObserveHotel("deleted")
	s.invalidate(ctx)
	return nil
}

func (s *HotelService) ListMine(ctx context.Context, ownerID string) ([]models.Hotel, error) {
	return s.hotels.ListByOwner(ctx, ownerID)
}

func (s *HotelService) GetMine(ctx context.Context, id, ownerID string) (*models.Hotel, error) {
	return s.hotels.FindOwned(ctx, id, ownerID)
}

func (s *HotelService) Get(ctx context.Context, id string) (*models.Hotel, error) {
	return s.hotels.FindByID(ctx, id)
}

func (s *HotelService) ListAll(ctx context.Context) ([]models.Hotel, error) {
	return s.hotels.ListAll(ctx)
}

func (s *HotelService) ListPending(ctx context.Context) ([]models.Hotel, error) {
	return s.hotels.ListByStatus(ctx, models.HotelStatusPending)
}

func (s *HotelService) Count(ctx context.Context) (int64, error) {
	return s.hotels.Count(ctx)
}
