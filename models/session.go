package models

import "github.com/mikosha12/Hulu-beand-mern-b/constants"

// Session is the authenticated caller of one request
type Session struct {
	ID     string
	UserID string
	Role   int
}

func (s Session) IsAdmin() bool {
	return s.Role == constants.RoleAdmin
}

func (s Session) Authenticated() bool {
	return s.UserID != ""
}
