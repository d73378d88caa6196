// Package models holds the console's data types: the cached user record,
// the session, and the drafts that live only while a form is open.
package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// IsAdmin reports whether r is the admin role. The server spells roles in
// upper case, so the comparison ignores case.
func (r Role) IsAdmin() bool {
	return strings.EqualFold(string(r), string(RoleAdmin))
}

// UserRecord is the client's cached copy of a server-owned account.
// ID, Role and the timestamps are never edited locally.
type UserRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Session pairs the bearer token with the user it was issued for.
type Session struct {
	Token string
	User  UserRecord
}

// AuthResult is what login and registration return.
type AuthResult struct {
	Token string     `json:"token"`
	User  UserRecord `json:"user"`
}

// RegistrationForm is the sign-up input. The password is checked by the
// password policy, not by struct tags.
type RegistrationForm struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}
