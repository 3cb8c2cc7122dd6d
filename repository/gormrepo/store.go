// Package gormrepo implements the repository ports on PostgreSQL or SQLite
// through gorm.
package gormrepo

import (
	"github.com/mikosha12/Hulu-beand-mern-b/repository"

	"gorm.io/gorm"
)

func NewStore(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Hotels:        NewHotelRepository(db),
		Users:         NewUserRepository(db),
		Notifications: NewNotificationRepository(db),
		Transactions:  NewTransactionRepository(db),
	}
}
