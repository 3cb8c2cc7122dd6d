package gormrepo

import (
	"context"
	"errors"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

func (r *NotificationRepository) UpsertMany(ctx context.Context, notifications []models.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	recs := make([]notificationRecord, 0, len(notifications))
	for _, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		recs = append(recs, toNotificationRecord(n))
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "admin_id"}},
			DoNothing: true,
		}).
		Create(&recs)
	if res.Error != nil {
		return 0, repository.DBError("Failed to create notifications", res.Error)
	}
	return int(res.RowsAffected), nil
}

func (r *NotificationRepository) ListByAdmin(ctx context.Context, adminID string) ([]models.Notification, error) {
	var recs []notificationRecord
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, repository.DBError("Failed to fetch notifications", err)
	}

	out := make([]models.Notification, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toModel())
	}
	return out, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	var rec notificationRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.NotificationNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch notification", err)
	}
	n := rec.toModel()
	return &n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	err := r.db.WithContext(ctx).Model(&notificationRecord{}).Where("id = ?", id).Update("is_read", true).Error
	if err != nil {
		return nil, repository.DBError("Failed to update notification", err)
	}
	return r.FindByID(ctx, id)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, adminID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&notificationRecord{}).
		Where("admin_id = ? AND is_read = ?", adminID, false).
		Count(&count).Error
	if err != nil {
		return 0, repository.DBError("Failed to count notifications", err)
	}
	return count, nil
}
