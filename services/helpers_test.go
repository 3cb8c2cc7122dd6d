package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/dto"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/repository/gormrepo"
	"github.com/mikosha12/Hulu-beand-mern-b/services/notification"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, gormrepo.AutoMigrate(db))
	return gormrepo.NewStore(db)
}

func seedUser(t *testing.T, store *repository.Store, email string, role int) *models.User {
	t.Helper()
	u := &models.User{Email: email, FirstName: "Test", LastName: "User", Role: role, IsActive: true}
	require.NoError(t, store.Users.Create(context.Background(), u))
	return u
}

func validHotelInput(name string) dto.HotelInput {
	return dto.HotelInput{
		Name:          name,
		City:          "Addis Ababa",
		Country:       "Ethiopia",
		Description:   "Quiet rooms near Bole",
		Type:          "Budget",
		AdultCount:    2,
		ChildCount:    1,
		Facilities:    []string{"Free WiFi", "Parking"},
		PricePerNight: 100,
		StarRating:    4,
	}
}

func image(name string) ImageFile {
	return ImageFile{
		Name: name,
		Size: 3,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("img")), nil },
	}
}

type fakeUploader struct {
	failOn string
}

func (f *fakeUploader) Upload(_ context.Context, folder string, file ImageFile) (string, error) {
	if file.Name == f.failOn {
		return "", fmt.Errorf("upload of %s refused", file.Name)
	}
	return "https://img.test/" + folder + "/" + file.Name, nil
}

type fakeGeocoder struct {
	loc   models.Location
	err   error
	calls int
}

func (f *fakeGeocoder) Geocode(context.Context, string) (models.Location, error) {
	f.calls++
	return f.loc, f.err
}

type pushed struct {
	users  []string
	admins bool
	event  notification.Event
}

type fakePush struct {
	mu   sync.Mutex
	sent []pushed
	err  error
}

func (f *fakePush) SendToUsers(userIDs []string, event notification.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, pushed{users: userIDs, event: event})
	return f.err
}

func (f *fakePush) SendToAdmins(event notification.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, pushed{admins: true, event: event})
	return f.err
}

type fakeGateway struct {
	intents map[string]*PaymentIntent
	err     error
	seq     int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{intents: map[string]*PaymentIntent{}}
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, metadata map[string]string) (*PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.seq++
	id := fmt.Sprintf("pi_%d", g.seq)
	pi := &PaymentIntent{ID: id, ClientSecret: id + "_secret", Amount: amount, Status: "requires_payment_method", Metadata: metadata}
	g.intents[id] = pi
	return pi, nil
}

func (g *fakeGateway) GetIntent(_ context.Context, id string) (*PaymentIntent, error) {
	if g.err != nil {
		return nil, g.err
	}
	pi, ok := g.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such payment_intent: %s", id)
	}
	return pi, nil
}

// hotelFixture wires a HotelService with its notifier over one store
type hotelFixture struct {
	store    *repository.Store
	hotels   *HotelService
	notifier *NotificationService
	push     *fakePush
	geocoder *fakeGeocoder
	uploader *fakeUploader
	cache    *Cache
}

func newHotelFixture(t *testing.T, strict bool) *hotelFixture {
	t.Helper()
	store := newTestStore(t)
	cache, _ := newTestCache(t)
	push := &fakePush{}
	geo := &fakeGeocoder{loc: models.Location{Latitude: 9.03, Longitude: 38.74}}
	up := &fakeUploader{}

	notifier := NewNotificationService(NotificationServiceOptions{
		Users:         store.Users,
		Notifications: store.Notifications,
		Push:          push,
	})
	hotels := NewHotelService(HotelServiceOptions{
		Hotels:         store.Hotels,
		Notifier:       notifier,
		Uploader:       up,
		Geocoder:       geo,
		Cache:          cache,
		StrictApproval: strict,
	})
	return &hotelFixture{store: store, hotels: hotels, notifier: notifier, push: push, geocoder: geo, uploader: up, cache: cache}
}

func ownerSession(id string) models.Session {
	return models.Session{ID: "sess-" + id, UserID: id, Role: constants.RoleUser}
}
