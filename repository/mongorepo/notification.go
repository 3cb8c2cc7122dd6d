package mongorepo

import (
	"context"
	"errors"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notificationsCollection = "notifications"

type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(notificationsCollection)}
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

// upsertModels builds one insert-if-absent write per (hotelId, adminId)
func upsertModels(notifications []models.Notification, now time.Time) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(notifications))
	for _, n := range notifications {
		createdAt := n.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"hotelId": n.HotelID, "adminId": n.AdminID}).
			SetUpdate(bson.M{"$setOnInsert": bson.M{
				"type":      n.Type,
				"message":   n.Message,
				"read":      false,
				"createdAt": createdAt,
			}}).
			SetUpsert(true))
	}
	return writes
}

func (r *NotificationRepository) UpsertMany(ctx context.Context, notifications []models.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	res, err := r.coll.BulkWrite(ctx, upsertModels(notifications, time.Now().UTC()), options.BulkWrite().SetOrdered(false))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return 0, repository.DBError("Failed to create notifications", err)
	}
	if res == nil {
		return 0, nil
	}
	return int(res.UpsertedCount), nil
}

func (r *NotificationRepository) ListByAdmin(ctx context.Context, adminID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"adminId": adminID}, opts)
	if err != nil {
		return nil, repository.DBError("Failed to fetch notifications", err)
	}
	defer cur.Close(ctx)

	var docs []notificationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, repository.DBError("Failed to fetch notifications", err)
	}
	out := make([]models.Notification, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*models.Notification, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.NotificationNotFound()
	}

	var doc notificationDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.NotificationNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to fetch notification", err)
	}
	n := doc.toModel()
	return &n, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, repository.NotificationNotFound()
	}

	var doc notificationDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"read": true}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.NotificationNotFound()
	}
	if err != nil {
		return nil, repository.DBError("Failed to update notification", err)
	}
	n := doc.toModel()
	return &n, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, adminID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"adminId": adminID, "read": false})
	if err != nil {
		return 0, repository.DBError("Failed to count notifications", err)
	}
	return count, nil
}
