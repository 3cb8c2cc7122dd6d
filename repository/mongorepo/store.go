// Package mongorepo implements the repository ports on MongoDB.
package mongorepo

import (
	"context"

	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Hotels:        NewHotelRepository(db),
		Users:         NewUserRepository(db),
		Notifications: NewNotificationRepository(db),
		Transactions:  NewTransactionRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// (hotelId, adminId) index makes concurrent fan-out idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		notificationsCollection: {
			{Keys: bson.D{{Key: "hotelId", Value: 1}, {Key: "adminId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "adminId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		hotelsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "pricePerNight", Value: 1}}},
			{Keys: bson.D{{Key: "starRating", Value: -1}}},
			{Keys: bson.D{{Key: "bookings.userId", Value: 1}}},
		},
		transactionsCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
