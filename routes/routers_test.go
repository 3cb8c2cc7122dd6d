package routes

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	middlewares "github.com/mikosha12/Hulu-beand-mern-b/middleware"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/repository/gormrepo"
	"github.com/mikosha12/Hulu-beand-mern-b/services"
	"github.com/mikosha12/Hulu-beand-mern-b/services/notification"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingPush struct {
	mu     sync.Mutex
	events []notification.Event
}

func (p *recordingPush) SendToUsers(_ []string, event notification.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPush) SendToAdmins(event notification.Event) error {
	return p.SendToUsers(nil, event)
}

type testServer struct {
	router *gin.Engine
	store  *repository.Store
	tokens *services.TokenService
	push   *recordingPush
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	store := gormrepo.NewStore(db)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	cache := services.NewCache(rdb)

	push := &recordingPush{}
	tokens := services.NewTokenService("test-secret", time.Hour)
	notifications := services.NewNotificationService(services.NotificationServiceOptions{
		Users:         store.Users,
		Notifications: store.Notifications,
		Push:          push,
	})
	transactions := services.NewTransactionService(services.TransactionServiceOptions{
		Transactions:   store.Transactions,
		CommissionRate: 0.1,
	})
	svc := Services{
		Auth:  services.NewAuthService(services.AuthServiceOptions{Users: store.Users, Tokens: tokens}),
		Users: services.NewUserService(services.UserServiceOptions{Users: store.Users}),
		Hotels: services.NewHotelService(services.HotelServiceOptions{
			Hotels:   store.Hotels,
			Notifier: notifications,
			Cache:    cache,
		}),
		Search: services.NewSearchService(services.SearchServiceOptions{
			Hotels:   store.Hotels,
			Cache:    cache,
			CacheTTL: time.Minute,
		}),
		Notifications: notifications,
		Transactions:  transactions,
		Bookings: services.NewBookingService(services.BookingServiceOptions{
			Hotels:       store.Hotels,
			Transactions: transactions,
			Cache:        cache,
		}),
	}

	router := gin.New()
	router.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler())
	SetupRoutes(router, svc, Options{TokenTTL: time.Hour})
	return &testServer{router: router, store: store, tokens: tokens, push: push}
}

func (s *testServer) seedUser(t *testing.T, email string, role int) (*models.User, string) {
	t.Helper()
	u := &models.User{Email: email, FirstName: "Test", LastName: "User", Role: role, IsActive: true}
	require.NoError(t, s.store.Users.Create(context.Background(), u))
	token, err := s.tokens.GenerateToken(u)
	require.NoError(t, err)
	return u, token
}

type envelope struct {
	Code       int             `json:"code"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Pages int   `json:"pages"`
	} `json:"pagination"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func grandInn() map[string]interface{} {
	return map[string]interface{}{
		"name":          "Grand Inn",
		"city":          "Addis Ababa",
		"country":       "Ethiopia",
		"description":   "Rooms a short walk from Meskel Square",
		"type":          "Luxury",
		"adultCount":    2,
		"childCount":    0,
		"facilities":    []string{"Free WiFi", "Spa"},
		"pricePerNight": 120,
		"starRating":    5,
	}
}

func TestSubmitNotifiesEveryAdmin(t *testing.T) {
	s := newTestServer(t)
	admin1, admin1Token := s.seedUser(t, "admin1@hulu.test", constants.RoleAdmin)
	admin2, admin2Token := s.seedUser(t, "admin2@hulu.test", constants.RoleAdmin)
	owner, ownerToken := s.seedUser(t, "owner@hulu.test", constants.RoleUser)

	status, env := s.do(t, http.MethodPost, "/api/my-hotels", ownerToken, grandInn())
	require.Equal(t, http.StatusCreated, status, env.Message)

	var hotel models.Hotel
	require.NoError(t, json.Unmarshal(env.Data, &hotel))
	assert.Equal(t, models.HotelStatusPending, hotel.Status)
	assert.Equal(t, owner.ID, hotel.UserID)

	for _, admin := range []struct {
		id    string
		token string
	}{{admin1.ID, admin1Token}, {admin2.ID, admin2Token}} {
		status, env := s.do(t, http.MethodGet, "/api/notifications", admin.token, nil)
		require.Equal(t, http.StatusOK, status)

		var list []models.Notification
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list, 1)
		assert.Equal(t, admin.id, list[0].AdminID)
		assert.Equal(t, hotel.ID, list[0].HotelID)
		assert.Equal(t, "A new hotel has been added and is waiting for approval: Grand Inn", list[0].Message)
		assert.False(t, list[0].Read)
	}
	assert.Len(t, s.push.events, 1)
}

func TestApproveFlow(t *testing.T) {
	s := newTestServer(t)
	_, adminToken := s.seedUser(t, "admin@hulu.test", constants.RoleAdmin)
	_, ownerToken := s.seedUser(t, "owner@hulu.test", constants.RoleUser)

	_, env := s.do(t, http.MethodPost, "/api/my-hotels", ownerToken, grandInn())
	var hotel models.Hotel
	require.NoError(t, json.Unmarshal(env.Data, &hotel))

	t.Run("missing hotel", func(t *testing.T) {
		status, _ := s.do(t, http.MethodPut, "/api/admin/approve/does-not-exist", adminToken, nil)
		assert.Equal(t, http.StatusNotFound, status)

		stored, err := s.store.Hotels.FindByID(context.Background(), hotel.ID)
		require.NoError(t, err)
		assert.Equal(t, models.HotelStatusPending, stored.Status)
	})

	t.Run("non admin", func(t *testing.T) {
		status, _ := s.do(t, http.MethodPut, "/api/admin/approve/"+hotel.ID, ownerToken, nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("anonymous", func(t *testing.T) {
		status, _ := s.do(t, http.MethodPut, "/api/admin/approve/"+hotel.ID, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("approve", func(t *testing.T) {
		status, env := s.do(t, http.MethodPut, "/api/admin/approve/"+hotel.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, status)

		var approved models.Hotel
		require.NoError(t, json.Unmarshal(env.Data, &approved))
		assert.Equal(t, models.HotelStatusApproved, approved.Status)
	})
}

func TestMarkReadByOtherAdminIsForbidden(t *testing.T) {
	s := newTestServer(t)
	_, admin1Token := s.seedUser(t, "admin1@hulu.test", constants.RoleAdmin)
	_, admin2Token := s.seedUser(t, "admin2@hulu.test", constants.RoleAdmin)
	_, ownerToken := s.seedUser(t, "owner@hulu.test", constants.RoleUser)

	s.do(t, http.MethodPost, "/api/my-hotels", ownerToken, grandInn())

	_, env := s.do(t, http.MethodGet, "/api/notifications", admin1Token, nil)
	var list []models.Notification
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)

	status, _ := s.do(t, http.MethodPost, "/api/notifications/"+list[0].ID+"/read", admin2Token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(t, http.MethodPost, "/api/notifications/"+list[0].ID+"/read", admin1Token, nil)
	require.Equal(t, http.StatusOK, status)
	var read models.Notification
	require.NoError(t, json.Unmarshal(env.Data, &read))
	assert.True(t, read.Read)
}

func TestSearchPagination(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		require.NoError(t, s.store.Hotels.Create(ctx, &models.Hotel{
			UserID:        "owner-1",
			Name:          fmt.Sprintf("Hotel %d", i),
			City:          "Addis Ababa",
			Country:       "Ethiopia",
			Description:   "Central",
			Type:          "Budget",
			AdultCount:    2,
			Facilities:    []string{"Free WiFi"},
			PricePerNight: float64(50 + i),
			StarRating:    3,
			Status:        models.HotelStatusApproved,
			LastUpdated:   time.Now(),
		}))
	}

	status, env := s.do(t, http.MethodGet, "/api/hotels/search?destination=addis&page=2", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(7), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 2, env.Pagination.Pages)

	var hotels []models.Hotel
	require.NoError(t, json.Unmarshal(env.Data, &hotels))
	assert.Len(t, hotels, 2)

	status, env = s.do(t, http.MethodGet, "/api/hotels/search?destination=nowhere", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, int64(0), env.Pagination.Total)

	status, _ = s.do(t, http.MethodGet, "/api/hotels/search?sortOption=cheapest", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestUpdateUsers(t *testing.T) {
	s := newTestServer(t)
	_, adminToken := s.seedUser(t, "admin@hulu.test", constants.RoleAdmin)
	guest, guestToken := s.seedUser(t, "guest@hulu.test", constants.RoleUser)

	status, env := s.do(t, http.MethodPut, "/api/users/me", guestToken, map[string]string{"firstName": "Almaz", "nationality": "Ethiopian"})
	require.Equal(t, http.StatusOK, status, env.Message)
	var me models.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, guest.ID, me.ID)
	assert.Equal(t, "Almaz", me.FirstName)
	assert.Equal(t, "Ethiopian", me.Nationality)

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	require.NoError(t, mw.WriteField("lastName", "Tesfaye"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPut, "/api/users/me", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+guestToken)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := s.store.Users.FindByID(context.Background(), guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Almaz", stored.FirstName)
	assert.Equal(t, "Tesfaye", stored.LastName)

	status, _ = s.do(t, http.MethodPut, "/api/users/guest@hulu.test", guestToken, map[string]int{"role": constants.RoleAdmin})
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.do(t, http.MethodPut, "/api/users/guest@hulu.test", adminToken, map[string]int{"role": constants.RoleAdmin})
	require.Equal(t, http.StatusOK, status, env.Message)
	var promoted models.User
	require.NoError(t, json.Unmarshal(env.Data, &promoted))
	assert.Equal(t, constants.RoleAdmin, promoted.Role)

	status, _ = s.do(t, http.MethodPut, "/api/users/nobody@hulu.test", adminToken, map[string]int{"role": constants.RoleUser})
	assert.Equal(t, http.StatusNotFound, status)
}
