package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
)

// Roles lists every valid role, owner first.
var Roles = []Role{RoleOwner, RoleEmployee}

// ParseRole converts s into a Role, rejecting anything outside the enum.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleEmployee:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// User models an authenticated actor in the system.
type User struct {
	ID             string    `json:"id" bson:"_id"`
	Username       string    `json:"username" bson:"username"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	Role           Role      `json:"role" bson:"role"`
	FullName       string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Email          string    `json:"email,omitempty" bson:"email,omitempty"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	ProfilePicture string    `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// UserPatch carries the optional fields of a user update. Nil fields are
// left untouched.
type UserPatch struct {
	Username       *string
	PasswordHash   *string
	Role           *Role
	IsActive       *bool
	ProfilePicture *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.PasswordHash == nil && p.Role == nil &&
		p.IsActive == nil && p.ProfilePicture == nil
}
