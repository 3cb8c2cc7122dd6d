package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
	apperrors "github.com/mikosha12/Hulu-beand-mern-b/errors"
	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"
	"github.com/mikosha12/Hulu-beand-mern-b/services/logger"
	"github.com/mikosha12/Hulu-beand-mern-b/services/metrics"
	"github.com/mikosha12/Hulu-beand-mern-b/services/notification"
)

// PendingMessage is the text admins receive for a new submission
func PendingMessage(hotelName string) string {
	return fmt.Sprintf("A new hotel has been added and is waiting for approval: %s", hotelName)
}

type NotificationServiceOptions struct {
	Users         repository.UserRepository
	Notifications repository.NotificationRepository
	Push          notification.Service
	Logger        logger.Logger
}

type NotificationService struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	push          notification.Service
	logger        logger.Logger
	now           func() time.Time
}

func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &NotificationService{
		users:         opts.Users,
		notifications: opts.Notifications,
		push:          opts.Push,
		logger:        log,
		now:           time.Now,
	}
}

// NotifyAdminsOfSubmission stores one unread notification per admin for
// hotel. Running it twice for the same hotel stores nothing new.
func (s *NotificationService) NotifyAdminsOfSubmission(ctx context.Context, hotel *models.Hotel) (int, error) {
	admins, err := s.users.ListAdmins(ctx)
	if err != nil {
		return 0, err
	}
	if len(admins) == 0 {
		return 0, nil
	}

	now := s.now().UTC()
	message := PendingMessage(hotel.Name)
	batch := make([]models.Notification, 0, len(admins))
	adminIDs := make([]string, 0, len(admins))
	for _, admin := range admins {
		batch = append(batch, models.Notification{
			Type:      constants.NotificationHotelPending,
			Message:   message,
			HotelID:   hotel.ID,
			AdminID:   admin.ID,
			CreatedAt: now,
		})
		adminIDs = append(adminIDs, admin.ID)
	}

	inserted, err := s.notifications.UpsertMany(ctx, batch)
	if err != nil {
		return 0, err
	}
	metrics.ObserveNotifications(inserted)

	if s.push != nil && inserted > 0 {
		event := notification.Event{
			Type: notification.EventHotelPending,
			Data: map[string]string{"hotelId": hotel.ID, "message": message},
		}
		if err := s.push.SendToUsers(adminIDs, event); err != nil {
			s.logger.Error("push pending hotel %s: %v", hotel.ID, err)
		}
	}
	return inserted, nil
}

func (s *NotificationService) ListForAdmin(ctx context.Context, adminID string) ([]models.Notification, error) {
	return s.notifications.ListByAdmin(ctx, adminID)
}

// MarkRead flags id as read for its addressee. Anyone else is refused.
func (s *NotificationService) MarkRead(ctx context.Context, id, callerID string) (*models.Notification, error) {
	n, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.AdminID != callerID {
		return nil, apperrors.Forbidden("Notification belongs to another admin")
	}
	if n.Read {
		return n, nil
	}
	return s.notifications.MarkRead(ctx, id)
}

func (s *NotificationService) CountUnread(ctx context.Context, adminID string) (int64, error) {
	return s.notifications.CountUnread(ctx, adminID)
}
