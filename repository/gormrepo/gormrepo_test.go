package gormrepo

import (
	"context"
	"fmt"
	"testing"
	"time"

	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func seedHotel(t *testing.T, repo *HotelRepository, h models.Hotel) models.Hotel {
	t.Helper()
	if h.UserID == "" {
		h.UserID = "owner-1"
	}
	if h.Status == "" {
		h.Status = models.HotelStatusPending
	}
	require.NoError(t, repo.Create(context.Background(), &h))
	return h
}

func TestHotelRepository_CreateAndFind(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	ctx := context.Background()

	h := seedHotel(t, repo, models.Hotel{
		Name:          "Grand Inn",
		City:          "Addis Ababa",
		Country:       "Ethiopia",
		Facilities:    []string{"Spa", "Free WiFi", "Spa"},
		PricePerNight: 120,
		StarRating:    4,
		ImageURLs:     []string{"https://img/1.jpg"},
	})
	assert.NotEmpty(t, h.ID)

	got, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grand Inn", got.Name)
	assert.Equal(t, []string{"Spa", "Free WiFi"}, got.Facilities)
	assert.Equal(t, []string{"https://img/1.jpg"}, got.ImageURLs)
	assert.Equal(t, models.HotelStatusPending, got.Status)
	assert.NotNil(t, got.Bookings)

	_, err = repo.FindOwned(ctx, h.ID, "someone-else")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDBNotFound))

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrHotelNotFound)
}

func TestHotelRepository_UpdateKeepsStatus(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	ctx := context.Background()

	h := seedHotel(t, repo, models.Hotel{Name: "Old", City: "Bahir Dar", Facilities: []string{"Pool"}})
	require.NoError(t, repo.SetStatus(ctx, h.ID, models.HotelStatusApproved))

	h.Name = "New"
	h.Facilities = []string{"Gym", "Parking"}
	h.Status = models.HotelStatusPending
	h.LastUpdated = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, &h))

	got, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, []string{"Gym", "Parking"}, got.Facilities)
	assert.Equal(t, models.HotelStatusApproved, got.Status)

	missing := models.Hotel{ID: "missing", Name: "x"}
	assert.ErrorIs(t, repo.Update(ctx, &missing), apperrors.ErrHotelNotFound)
}

func TestHotelRepository_Status(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	ctx := context.Background()
	h := seedHotel(t, repo, models.Hotel{Name: "A"})

	assert.ErrorIs(t, repo.SetStatus(ctx, "missing", models.HotelStatusApproved), apperrors.ErrHotelNotFound)

	require.NoError(t, repo.TransitionStatus(ctx, h.ID, models.HotelStatusPending, models.HotelStatusApproved))
	err := repo.TransitionStatus(ctx, h.ID, models.HotelStatusPending, models.HotelStatusRejected)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))

	err = repo.TransitionStatus(ctx, "missing", models.HotelStatusPending, models.HotelStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrHotelNotFound)

	got, err := repo.FindByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HotelStatusApproved, got.Status)
}

func TestHotelRepository_Delete(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	ctx := context.Background()
	h := seedHotel(t, repo, models.Hotel{Name: "A", Facilities: []string{"Spa"}})

	assert.ErrorIs(t, repo.Delete(ctx, h.ID, "intruder"), apperrors.ErrHotelNotFound)
	require.NoError(t, repo.Delete(ctx, h.ID, "owner-1"))
	_, err := repo.FindByID(ctx, h.ID)
	assert.ErrorIs(t, err, apperrors.ErrHotelNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, h.ID, ""), apperrors.ErrHotelNotFound)
}

func TestHotelRepository_Search(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	ctx := context.Background()

	seedHotel(t, repo, models.Hotel{Name: "A", City: "Addis Ababa", Country: "Ethiopia", Type: "Budget",
		AdultCount: 2, ChildCount: 1, Facilities: []string{"Spa", "Free WiFi"}, PricePerNight: 80, StarRating: 3})
	seedHotel(t, repo, models.Hotel{Name: "B", City: "Nairobi", Country: "Kenya", Type: "Luxury",
		AdultCount: 4, ChildCount: 2, Facilities: []string{"Spa"}, PricePerNight: 300, StarRating: 5})
	seedHotel(t, repo, models.Hotel{Name: "C", City: "Gondar", Country: "Ethiopia", Type: "Boutique",
		AdultCount: 2, Facilities: []string{"Free WiFi", "Spa", "Parking"}, PricePerNight: 150, StarRating: 4})

	names := func(hotels []models.Hotel) []string {
		out := make([]string, 0, len(hotels))
		for _, h := range hotels {
			out = append(out, h.Name)
		}
		return out
	}

	tests := []struct {
		name  string
		query repository.HotelQuery
		want  []string
	}{
		{"destination matches country case-insensitively", repository.HotelQuery{Destination: "ETHIO"}, []string{"A", "C"}},
		{"destination matches city", repository.HotelQuery{Destination: "nairobi"}, []string{"B"}},
		{"destination wildcard is literal", repository.HotelQuery{Destination: "%"}, []string{}},
		{"adult count is a minimum", repository.HotelQuery{MinAdults: intPtr(3)}, []string{"B"}},
		{"child count is a minimum", repository.HotelQuery{MinChildren: intPtr(1)}, []string{"A", "B"}},
		{"facilities are all-of", repository.HotelQuery{Facilities: []string{"Spa", "Free WiFi"}}, []string{"A", "C"}},
		{"types are any-of", repository.HotelQuery{Types: []string{"Luxury", "Budget"}}, []string{"A", "B"}},
		{"stars are any-of", repository.HotelQuery{Stars: []int{4, 5}}, []string{"B", "C"}},
		{"max price is inclusive", repository.HotelQuery{MaxPrice: floatPtr(150)}, []string{"A", "C"}},
		{"star rating sort", repository.HotelQuery{Sort: repository.SortStarRating}, []string{"B", "C", "A"}},
		{"price ascending", repository.HotelQuery{Sort: repository.SortPriceAsc}, []string{"A", "C", "B"}},
		{"price descending", repository.HotelQuery{Sort: repository.SortPriceDesc}, []string{"B", "C", "A"}},
		{"status filter", repository.HotelQuery{Status: models.HotelStatusApproved}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hotels, total, err := repo.Search(ctx, tt.query)
			require.NoError(t, err)
			if tt.query.Sort == repository.SortDefault {
				assert.ElementsMatch(t, tt.want, names(hotels))
			} else {
				assert.Equal(t, tt.want, names(hotels))
			}
			assert.Equal(t, int64(len(tt.want)), total)
		})
	}
}

func TestHotelRepository_SearchHonoursContext(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	seedHotel(t, repo, models.Hotel{Name: "A", Facilities: []string{"Spa", "Pool"}})

	q := repository.HotelQuery{Facilities: []string{"Spa", "Pool"}}
	hotels, total, err := repo.Search(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, hotels, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = repo.Search(ctx, q)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeDBError))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHotelRepository_SearchPagination(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		seedHotel(t, repo, models.Hotel{Name: fmt.Sprintf("H%02d", i), PricePerNight: float64(100 + i%3)})
	}

	seen := map[string]bool{}
	for skip := 0; skip < 15; skip += 5 {
		hotels, total, err := repo.Search(ctx, repository.HotelQuery{Sort: repository.SortPriceAsc, Skip: skip, Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(12), total)
		for _, h := range hotels {
			assert.False(t, seen[h.ID], "duplicate %s", h.Name)
			seen[h.ID] = true
		}
	}
	assert.Len(t, seen, 12)
}

func TestHotelRepository_Bookings(t *testing.T) {
	repo := NewHotelRepository(newTestDB(t))
	ctx := context.Background()
	h := seedHotel(t, repo, models.Hotel{Name: "A", City: "Hawassa", Country: "Ethiopia"})
	seedHotel(t, repo, models.Hotel{Name: "B", City: "Mombasa", Country: "Kenya"})

	booking := models.Booking{UserID: "guest-1", FirstName: "Abebe", TotalCost: 240, PaymentIntentID: "pi_1"}
	require.NoError(t, repo.AppendBooking(ctx, h.ID, booking))
	assert.ErrorIs(t, repo.AppendBooking(ctx, "missing", booking), apperrors.ErrHotelNotFound)
	assert.ErrorIs(t, repo.AppendBooking(ctx, h.ID, booking), apperrors.ErrBookingExists)

	booked, err := repo.ListBookedBy(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, h.ID, booked[0].ID)
	require.Len(t, booked[0].Bookings, 1)
	assert.Equal(t, "pi_1", booked[0].Bookings[0].PaymentIntentID)

	destinations, err := repo.Destinations(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Hawassa", "Mombasa", "Ethiopia", "Kenya"}, destinations)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	admin := models.User{Email: "Admin@Example.com", Password: "hash", Role: 1, IsActive: true}
	require.NoError(t, repo.Create(ctx, &admin))
	require.NoError(t, repo.Create(ctx, &models.User{Email: "guest@example.com", Password: "hash", IsActive: true}))

	dup := models.User{Email: "admin@example.com", Password: "hash"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), apperrors.ErrUserAlreadyExists)

	got, err := repo.FindByEmail(ctx, "ADMIN@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)

	admins, err := repo.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)

	require.NoError(t, repo.SetActive(ctx, admin.ID, false))
	got, err = repo.FindByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, repo.Delete(ctx, admin.ID))
	assert.ErrorIs(t, repo.Delete(ctx, admin.ID), apperrors.ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	u := models.User{Email: "guest@example.com", Password: "hash", FirstName: "Abebe", Role: 1, IsActive: true}
	require.NoError(t, repo.Create(ctx, &u))
	require.NoError(t, repo.Create(ctx, &models.User{Email: "taken@example.com", Password: "hash"}))

	u.FirstName = "Almaz"
	u.ProfilePicture = "https://img.test/avatars/me.jpg"
	u.Role = 0
	u.IsActive = false
	require.NoError(t, repo.Update(ctx, &u))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Almaz", got.FirstName)
	assert.Equal(t, "https://img.test/avatars/me.jpg", got.ProfilePicture)
	assert.Equal(t, 0, got.Role)
	assert.False(t, got.IsActive)
	assert.Equal(t, "hash", got.Password)

	got.Email = "Taken@example.com"
	assert.ErrorIs(t, repo.Update(ctx, got), apperrors.ErrUserAlreadyExists)
	assert.ErrorIs(t, repo.Update(ctx, &models.User{ID: "missing", Email: "x@example.com"}), apperrors.ErrUserNotFound)
}

func TestNotificationRepository(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()

	batch := []models.Notification{
		{HotelID: "h1", AdminID: "a1", Message: "m"},
		{HotelID: "h1", AdminID: "a2", Message: "m"},
	}
	inserted, err := repo.UpsertMany(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.UpsertMany(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	list, err := repo.ListByAdmin(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Read)

	unread, err := repo.CountUnread(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	for i := 0; i < 2; i++ {
		n, err := repo.MarkRead(ctx, list[0].ID)
		require.NoError(t, err)
		assert.True(t, n.Read)
	}

	unread, err = repo.CountUnread(ctx, "a1")
	require.NoError(t, err)
	assert.Zero(t, unread)

	_, err = repo.MarkRead(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}

func TestTransactionRepository(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	old := models.Transaction{Amount: 100, Type: "payment", CreatedAt: now.Add(-48 * time.Hour)}
	recent := models.Transaction{Amount: 200, Type: "payment", CreatedAt: now.Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, &old))
	require.NoError(t, repo.Create(ctx, &recent))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, recent.ID, all[0].ID)

	window, err := repo.ListBetween(ctx, now.Add(-24*time.Hour), now)
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, recent.ID, window[0].ID)

	require.NoError(t, repo.Delete(ctx, old.ID))
	_, err = repo.FindByID(ctx, old.ID)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, old.ID), apperrors.ErrTransactionNotFound)
}
