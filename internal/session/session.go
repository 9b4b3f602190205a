// Package session holds the in-memory identity and role of the running
// session. Nothing here is persisted.
package session

import "strings"

// Role is the kind of user the session acts as.
type Role string

const (
	RoleNone    Role = ""
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a route parameter to a role. Unknown values map to RoleNone.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleStudent):
		return RoleStudent
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleNone
	}
}

// Title returns the display label for the role.
func (r Role) Title() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleAdmin:
		return "Admin"
	default:
		return ""
	}
}

// Identity is who the session believes the user is.
type Identity struct {
	FirstName string
	LastName  string
	Email     string
}

// Initial is the avatar letter for the identity, "U" when unknown.
func (i *Identity) Initial() string {
	if i == nil || i.FirstName == "" {
		return "U"
	}
	return strings.ToUpper(string([]rune(i.FirstName)[:1]))
}

// PlaceholderFirstName is used when a login happens without a prior signup.
const PlaceholderFirstName = "User"

// State is the session. The zero value is an anonymous session.
type State struct {
	identity *Identity
	role     Role
}

// New returns an anonymous session.
func New() *State { return &State{} }

// Identity returns a copy of the current identity, or nil.
func (s *State) Identity() *Identity {
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *State) Role() Role { return s.role }

// Anonymous reports whether there is neither identity nor role.
func (s *State) Anonymous() bool {
	return s.identity == nil && s.role == RoleNone
}

// SignUp creates or overwrites the identity and sets the role.
func (s *State) SignUp(id Identity, role Role) {
	s.identity = &id
	s.role = role
}

// LogIn sets the role and makes sure an identity exists. Credentials are not
// checked; there is no credential store.
func (s *State) LogIn(role Role) {
	s.role = role
	if s.identity == nil {
		s.identity = &Identity{FirstName: PlaceholderFirstName}
	}
}

// Logout clears identity and role.
func (s *State) Logout() {
	s.identity = nil
	s.role = RoleNone
}
