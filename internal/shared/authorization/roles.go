package authorization

import "github.com/cragbase/cragbase/internal/shared/constants"

// UserRole is the role carried in an access token. Roles are ordered:
// admin includes editor, editor includes guest.
type UserRole string

const (
	RoleAdmin  UserRole = constants.RoleAdmin
	RoleEditor UserRole = constants.RoleEditor
	RoleGuest  UserRole = constants.RoleGuest
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleGuest
}

// ParseUserRole maps unknown strings to RoleGuest.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleGuest
}
