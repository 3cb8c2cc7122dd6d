package models

import (
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           int       `json:"role"`
	IsActive       bool      `json:"isActive"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	PhoneNumber    string    `json:"phoneNumber,omitempty"`
	Nationality    string    `json:"nationality,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}
