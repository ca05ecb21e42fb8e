package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account. Password is kept verbatim; the store
// compares it as a literal string.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Credentials is the login challenge. All four fields must match a stored
// user exactly.
type Credentials struct {
	Username string
	Password string
	Email    string
	Role     string
}

// Session identifies the authenticated actor for the duration of a request.
// It is produced by a successful login and threaded through the calls that
// need an acting user.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}
