package dto

import (
	"strings"

	"github.com/mikosha12/Hulu-beand-mern-b/models"
)

// ProfilePatch is what a user may change on their own account
type ProfilePatch struct {
	FirstName   *string `json:"firstName" form:"firstName" validate:"omitempty,min=1"`
	LastName    *string `json:"lastName" form:"lastName" validate:"omitempty,min=1"`
	Email       *string `json:"email" form:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber" form:"phoneNumber"`
	Nationality *string `json:"nationality" form:"nationality"`
}

func (p ProfilePatch) Apply(u *models.User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*p.Email))
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Nationality != nil {
		u.Nationality = *p.Nationality
	}
}

// AdminUserPatch adds the account switches only admins may flip
type AdminUserPatch struct {
	ProfilePatch
	Role     *int  `json:"role" validate:"omitempty,oneof=0 1"`
	IsActive *bool `json:"isActive"`
}

func (p AdminUserPatch) Apply(u *models.User) {
	p.ProfilePatch.Apply(u)
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}
