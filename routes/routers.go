package routes

import (
	"net/http"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	"github.com/mikosha12/Hulu-beand-mern-b/controllers"
	_ "github.com/mikosha12/Hulu-beand-mern-b/docs"
	middlewares "github.com/mikosha12/Hulu-beand-mern-b/middleware"
	"github.com/mikosha12/Hulu-beand-mern-b/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services bundles what the HTTP layer exposes
type Services struct {
	Auth          *services.AuthService
	Users         *services.UserService
	Hotels        *services.HotelService
	Search        *services.SearchService
	Notifications *services.NotificationService
	Transactions  *services.TransactionService
	Bookings      *services.BookingService
}

type Options struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	TokenTTL        time.Duration
	SecureCookie    bool
	// Metrics serves /metrics when set
	Metrics http.Handler
}

func SetupRoutes(router *gin.Engine, svc Services, opts Options) {
	authController := controllers.NewAuthController(svc.Auth, opts.TokenTTL, opts.SecureCookie)
	userController := controllers.NewUserController(svc.Users, svc.Auth)
	hotelController := controllers.NewHotelController(svc.Hotels)
	adminController := controllers.NewAdminController(svc.Hotels, svc.Transactions)
	searchController := controllers.NewSearchController(svc.Search)
	notificationController := controllers.NewNotificationController(svc.Notifications)
	transactionController := controllers.NewTransactionController(svc.Transactions)
	bookingController := controllers.NewBookingController(svc.Bookings)

	user := middlewares.AuthMiddleware(svc.Auth)
	admin := middlewares.AuthMiddleware(svc.Auth, constants.RoleAdmin)

	api := router.Group("/api")
	if opts.RateLimitPerSec > 0 {
		api.Use(middlewares.RateLimit(opts.RateLimitPerSec, opts.RateLimitBurst))
	}

	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/google", authController.GoogleLogin)
	api.POST("/auth/logout", authController.Logout)

	api.GET("/users/me", user, userController.Me)
	api.PUT("/users/me", user, userController.UpdateMe)
	api.PUT("/users/deactivate", user, userController.Deactivate)
	api.PUT("/users/:email", admin, userController.UpdateByEmail)
	api.GET("/users", admin, userController.List)
	api.GET("/users/:id", admin, userController.Get)
	api.DELETE("/users/:id", admin, userController.Delete)
	api.POST("/users/register/admin", admin, userController.RegisterAdmin)

	api.POST("/my-hotels", user, hotelController.Submit)
	api.GET("/my-hotels", user, hotelController.ListMine)
	api.GET("/my-hotels/:hotelId", user, hotelController.GetMine)
	api.PUT("/my-hotels/:hotelId", user, hotelController.UpdateMine)
	api.PUT("/my-hotels/edit/:hotelId", admin, hotelController.AdminUpdate)
	api.DELETE("/my-hotels/:hotelId", user, hotelController.DeleteMine)

	api.GET("/hotels/search", searchController.Search)
	api.GET("/hotels/search/last", searchController.LastFilter)
	api.GET("/hotels/suggest", searchController.Suggest)
	api.GET("/hotels", hotelController.ListAll)
	api.GET("/hotels/count", hotelController.Count)
	api.GET("/hotels/:id", hotelController.Get)
	api.DELETE("/hotels/:id", admin, hotelController.AdminDelete)
	api.POST("/hotels/:id/bookings/payment-intent", user, bookingController.CreatePaymentIntent)
	api.POST("/hotels/:id/bookings", user, bookingController.Confirm)
	api.GET("/my-bookings", user, bookingController.MyBookings)

	api.PUT("/admin/approve/:hotelId", admin, adminController.Approve)
	api.PUT("/admin/reject/:hotelId", admin, adminController.Reject)
	api.GET("/admin/pending-hotels", admin, adminController.ListPending)
	api.GET("/admin/revenue", admin, adminController.Revenue)

	api.GET("/notifications", admin, notificationController.List)
	api.GET("/notifications/unread-count", admin, notificationController.UnreadCount)
	api.POST("/notifications/:id/read", admin, notificationController.MarkRead)

	api.GET("/transactions", admin, transactionController.List)
	api.GET("/transactions/:id", admin, transactionController.Get)
	api.DELETE("/transactions/:id", admin, transactionController.Delete)

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
