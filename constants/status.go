package constants

import "time"

// User roles
const (
	RoleUser  = 0
	RoleAdmin = 1
)

// Transaction type
const (
	TransactionPayment = "payment"
	TransactionRefund  = "refund"
)

// Notification type
const (
	NotificationHotelPending = "New Hotel Pending Approval"
)

const (
	SearchPageSize    = 5
	SuggestLimit      = 5
	TokenTTL          = 48 * time.Hour
	AuthCookieName    = "auth_token"
	SessionHeader     = "X-Session-ID"
	MaxImageFiles     = 10
	MaxImageBytes     = 5 << 20
	DefaultCurrency   = "etb"
	ImageUploadDir    = "hotels"
	AvatarUploadDir   = "avatars"
	SearchCachePrefix = "hotels:search"
)
