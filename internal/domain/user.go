package domain

import (
	"errors"
	"strings"
)

var (
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotAuthorized indicates that the user may not invoke the operation.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrAuthentication is the uniform login failure. It deliberately does not
	// distinguish an unknown user from a wrong password.
	ErrAuthentication = errors.New("invalid username or password")
	// ErrConfiguration indicates a deployment defect: a missing role, a missing
	// authorization rule or a missing system principal.
	ErrConfiguration = errors.New("configuration error")
)

// Names of the built-in roles.
const (
	RoleAdmin  = "Admin"
	RoleSystem = "System"
	RoleUser   = "User"
)

// Role names a set of permissions. Matching is case-insensitive and goes
// through Role.Is only.
type Role struct {
	ID   int32
	Name string
}

// Is reports whether the role has the given name, ignoring case.
func (r Role) Is(name string) bool {
	return strings.EqualFold(r.Name, name)
}

// User holds user identity data.
type User struct {
	ID   int32
	Name string
	Role Role
}
