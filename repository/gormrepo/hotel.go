package gormrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

var _ repository.HotelRepository = (*HotelRepository)(nil)

func preloadChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Facilities", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("Bookings", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at") })
}

func toHotels(recs []hotelRecord) []models.Hotel {
	out := make([]models.Hotel, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toModel())
	}
	return out
}

func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	if hotel.ID == "" {
		hotel.ID = uuid.NewString()
	}
	if hotel.CreatedAt.IsZero() {
		hotel.CreatedAt = time.Now().UTC()
	}
	for i := range hotel.Bookings {
		if hotel.Bookings[i].ID == "" {
			hotel.Bookings[i].ID = uuid.NewString()
		}
	}

	rec := toHotelRecord(hotel)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return repository.DBError("Failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (*models.Hotel, error) {
	var rec hotelRecord
	err := scope(preloadChildren(r.db.WithContext(ctx))).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.HotelNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch hotel", err)
	}
	h := rec.toModel()
	return &h, nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id string) (*models.Hotel, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	})
}

func (r *HotelRepository) FindOwned(ctx context.Context, id, ownerID string) (*models.Hotel, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ? AND user_id = ?", id, ownerID)
	})
}

func (r *HotelRepository) Update(ctx context.Context, hotel *models.Hotel) error {
	rec := toHotelRecord(hotel)
	facilities := rec.Facilities
	rec.Facilities, rec.Bookings = nil, nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&hotelRecord{ID: rec.ID}).
			Select("name", "city", "country", "description", "type", "adult_count", "child_count",
				"price_per_night", "star_rating", "image_urls", "latitude", "longitude", "last_updated").
			Updates(&rec)
		if res.Error != nil {
			return repository.DBError("Failed to update hotel", res.Error)
		}
		if res.RowsAffected == 0 {
			return repository.HotelNotFound()
		}

		if err := tx.Where("hotel_id = ?", rec.ID).Delete(&facilityRecord{}).Error; err != nil {
			return repository.DBError("Failed to update facilities", err)
		}
		if len(facilities) > 0 {
			if err := tx.Create(&facilities).Error; err != nil {
				return repository.DBError("Failed to update facilities", err)
			}
		}
		return nil
	})
}

func (r *HotelRepository) SetStatus(ctx context.Context, id string, status models.HotelStatus) error {
	res := r.db.WithContext(ctx).Model(&hotelRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "last_updated": time.Now().UTC()})
	if res.Error != nil {
		return repository.DBError("Failed to update hotel status", res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.HotelNotFound()
	}
	return nil
}

func (r *HotelRepository) TransitionStatus(ctx context.Context, id string, from, to models.HotelStatus) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&hotelRecord{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{"status": string(to), "last_updated": time.Now().UTC()})
	if res.Error != nil {
		return repository.DBError("Failed to update hotel status", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&hotelRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return repository.DBError("Failed to update hotel status", err)
	}
	if count == 0 {
		return repository.HotelNotFound()
	}
	return repository.StatusConflict(from)
}

func (r *HotelRepository) Delete(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("id = ?", id)
		if ownerID != "" {
			q = q.Where("user_id = ?", ownerID)
		}
		res := q.Delete(&hotelRecord{})
		if res.Error != nil {
			return repository.DBError("Failed to delete hotel", res.Error)
		}
		if res.RowsAffected == 0 {
			return repository.HotelNotFound()
		}

		if err := tx.Where("hotel_id = ?", id).Delete(&facilityRecord{}).Error; err != nil {
			return repository.DBError("Failed to delete hotel", err)
		}
		if err := tx.Where("hotel_id = ?", id).Delete(&bookingRecord{}).Error; err != nil {
			return repository.DBError("Failed to delete hotel", err)
		}
		return nil
	})
}

func (r *HotelRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]models.Hotel, error) {
	var recs []hotelRecord
	if err := scope(preloadChildren(r.db.WithContext(ctx))).Find(&recs).Error; err != nil {
		return nil, repository.DBError("Failed to fetch hotels", err)
	}
	return toHotels(recs), nil
}

func (r *HotelRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Hotel, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", ownerID).Order("created_at DESC")
	})
}

func (r *HotelRepository) ListByStatus(ctx context.Context, status models.HotelStatus) ([]models.Hotel, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", string(status)).Order("created_at DESC")
	})
}

func (r *HotelRepository) ListAll(ctx context.Context) ([]models.Hotel, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order("last_updated DESC")
	})
}

func (r *HotelRepository) ListBookedBy(ctx context.Context, userID string) ([]models.Hotel, error) {
	return r.list(ctx, func(db *gorm.DB) *gorm.DB {
		booked := r.db.Model(&bookingRecord{}).Select("hotel_id").Where("user_id = ?", userID)
		return db.Where("id IN (?)", booked).Order("created_at DESC")
	})
}

func (r *HotelRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&hotelRecord{}).Count(&count).Error; err != nil {
		return 0, repository.DBError("Failed to count hotels", err)
	}
	return count, nil
}

func (r *HotelRepository) Search(ctx context.Context, q repository.HotelQuery) ([]models.Hotel, int64, error) {
	db := r.db.WithContext(ctx)
	filtered := applyHotelQuery(db.Model(&hotelRecord{}), db, q).Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, repository.DBError("Failed to search hotels", err)
	}

	var recs []hotelRecord
	page := preloadChildren(filtered)
	for _, o := range orderFor(q.Sort) {
		page = page.Order(o)
	}
	if q.Skip > 0 {
		page = page.Offset(q.Skip)
	}
	if q.Limit > 0 {
		page = page.Limit(q.Limit)
	}
	if err := page.Find(&recs).Error; err != nil {
		return nil, 0, repository.DBError("Failed to search hotels", err)
	}
	return toHotels(recs), total, nil
}

// applyHotelQuery adds the WHERE clauses of q. root builds subqueries
// outside the current statement.
func applyHotelQuery(db, root *gorm.DB, q repository.HotelQuery) *gorm.DB {
	if q.Destination != "" {
		like := "%" + escapeLike(strings.ToLower(q.Destination)) + "%"
		db = db.Where("(LOWER(city) LIKE ? ESCAPE '\\' OR LOWER(country) LIKE ? ESCAPE '\\')", like, like)
	}
	if q.MinAdults != nil {
		db = db.Where("adult_count >= ?", *q.MinAdults)
	}
	if q.MinChildren != nil {
		db = db.Where("child_count >= ?", *q.MinChildren)
	}
	if facilities := distinct(q.Facilities); len(facilities) > 0 {
		having := root.Model(&facilityRecord{}).
			Select("hotel_id").
			Where("name IN ?", facilities).
			Group("hotel_id").
			Having("COUNT(DISTINCT name) = ?", len(facilities))
		db = db.Where("id IN (?)", having)
	}
	if len(q.Types) > 0 {
		db = db.Where("type IN ?", q.Types)
	}
	if len(q.Stars) > 0 {
		db = db.Where("star_rating IN ?", q.Stars)
	}
	if q.MaxPrice != nil {
		db = db.Where("price_per_night <= ?", *q.MaxPrice)
	}
	if q.Status != "" {
		db = db.Where("status = ?", string(q.Status))
	}
	return db
}

func orderFor(sort repository.HotelSort) []string {
	switch sort {
	case repository.SortStarRating:
		return []string{"star_rating DESC", "id"}
	case repository.SortPriceAsc:
		return []string{"price_per_night ASC", "id"}
	case repository.SortPriceDesc:
		return []string{"price_per_night DESC", "id"}
	default:
		return []string{"created_at", "id"}
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func (r *HotelRepository) AppendBooking(ctx context.Context, hotelID string, booking models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec hotelRecord
		err := tx.Select("id").Where("id = ?", hotelID).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.HotelNotFound()
		}
		if err != nil {
			return repository.DBError("Failed to add booking", err)
		}

		if booking.PaymentIntentID != "" {
			var paid int64
			err := tx.Model(&bookingRecord{}).
				Where("hotel_id = ? AND payment_intent_id = ?", hotelID, booking.PaymentIntentID).
				Count(&paid).Error
			if err != nil {
				return repository.DBError("Failed to add booking", err)
			}
			if paid > 0 {
				return repository.BookingExists()
			}
		}

		row := toBookingRecord(hotelID, booking)
		if err := tx.Create(&row).Error; err != nil {
			return repository.DBError("Failed to add booking", err)
		}
		return nil
	})
}

func (r *HotelRepository) Destinations(ctx context.Context) ([]string, error) {
	var cities, countries []string
	if err := r.db.WithContext(ctx).Model(&hotelRecord{}).Where("city <> ''").Distinct().Pluck("city", &cities).Error; err != nil {
		return nil, repository.DBError("Failed to list destinations", err)
	}
	if err := r.db.WithContext(ctx).Model(&hotelRecord{}).Where("country <> ''").Distinct().Pluck("country", &countries).Error; err != nil {
		return nil, repository.DBError("Failed to list destinations", err)
	}
	return distinct(append(cities, countries...)), nil
}
